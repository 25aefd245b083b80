package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizbank/internal/config"
	"quizbank/internal/logger"
	"quizbank/internal/question"
)

var loadEnv = config.FromEnv

// invocation carries the flags shared by every command plus the logger built from them.
type invocation struct {
	cmd     *Command
	flags   *flag.FlagSet
	env     config.Env
	stdout  io.Writer
	stderr  io.Writer
	file    *string
	format  *string
	verbose *bool
	noColor *bool
	log     *logger.Logger
}

// newInvocation registers the shared flags, using environment values as defaults.
func newInvocation(cmd *Command, stdout, stderr io.Writer) (*invocation, error) {
	env, err := loadEnv()
	if err != nil {
		return nil, err
	}
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	inv := &invocation{
		cmd:    cmd,
		flags:  flags,
		env:    env,
		stdout: stdout,
		stderr: stderr,
		log:    logger.Nop(),
	}
	inv.file = flags.String("file", env.File, "Path to the question bank (yaml or json)")
	inv.format = flags.String("format", env.Format, "Output format: yaml|json (default: from --file)")
	inv.verbose = flags.Bool("verbose", false, "Verbose logging")
	inv.noColor = flags.Bool("no-color", env.ColorDisabled(), "Disable ANSI colors")
	return inv, nil
}

// parse parses args and builds the logger. The boolean is false when the
// command must stop and return the given exit code.
func (inv *invocation) parse(args []string) (int, bool) {
	if err := inv.flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(inv.cmd, inv.stdout)
			return ExitOK, false
		}
		fmt.Fprintf(inv.stderr, "invalid arguments: %v\n", err)
		printCommandUsage(inv.cmd, inv.stderr)
		return ExitUsage, false
	}
	if inv.flags.NArg() > 0 {
		fmt.Fprintf(inv.stderr, "unexpected arguments: %s\n", strings.Join(inv.flags.Args(), " "))
		printCommandUsage(inv.cmd, inv.stderr)
		return ExitUsage, false
	}
	level := inv.env.LogLevel
	if *inv.verbose {
		level = "debug"
	}
	log, err := logger.New(inv.stderr, inv.env.LogMode, level)
	if err != nil {
		fmt.Fprintf(inv.stderr, "Failed to configure logging: %v\n", err)
		return ExitError, false
	}
	inv.log = log.With("command", inv.cmd.Name)
	return ExitOK, true
}

// usageError reports a missing or invalid flag value.
func (inv *invocation) usageError(format string, args ...any) int {
	fmt.Fprintf(inv.stderr, format+"\n", args...)
	printCommandUsage(inv.cmd, inv.stderr)
	return ExitUsage
}

// loadBank reads the bank named by --file.
func (inv *invocation) loadBank() (question.Bank, bool) {
	inv.log.Debug("loading question bank", "file", *inv.file)
	bank, err := question.LoadBank(*inv.file)
	if err != nil {
		fmt.Fprintf(inv.stderr, "Failed to load question bank:\n%v\n", err)
		return question.Bank{}, false
	}
	inv.log.Debug("loaded question bank", "questions", len(bank.Questions))
	return bank, true
}

// outputFormat resolves --format, falling back to the input file's extension.
func (inv *invocation) outputFormat() (question.Format, error) {
	if strings.TrimSpace(*inv.format) == "" {
		return question.FormatForPath(*inv.file), nil
	}
	return question.ParseFormat(*inv.format)
}

// color reports whether output to stdout may use ANSI styling.
func (inv *invocation) color() bool {
	return !*inv.noColor && isTerminal(inv.stdout)
}

// finish flushes the logger and passes code through.
func (inv *invocation) finish(code int) int {
	inv.log.Sync()
	return code
}

// start is the common preamble of every command handler.
func start(cmd *Command, args []string, stdout, stderr io.Writer, register func(*flag.FlagSet)) (*invocation, int, bool) {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return nil, ExitOK, false
	}
	inv, err := newInvocation(cmd, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid environment: %v\n", err)
		return nil, ExitError, false
	}
	if register != nil {
		register(inv.flags)
	}
	code, ok := inv.parse(args)
	return inv, code, ok
}
