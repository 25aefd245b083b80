package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizbank <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nEvery command reads --file (default $QUIZBANK_FILE or questions.yml).")
	fmt.Fprintln(w, "Edit commands print the resulting bank and never modify the file.")
	fmt.Fprintln(w, "\nUse \"quizbank <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("validate", "Validate a question bank", []string{
		"quizbank validate [--file <path>]",
	}, runValidate),
	command("list", "List questions as a table", []string{
		"quizbank list [--file <path>] [--published] [--non-empty]",
	}, runList),
	command("show", "Show one question as markdown", []string{
		"quizbank show --id <id> [--file <path>]",
	}, runShow),
	command("stats", "Summarize points and types", []string{
		"quizbank stats [--file <path>]",
	}, runStats),
	command("csv", "Export questions as CSV", []string{
		"quizbank csv [--file <path>] [--published]",
	}, runCSV),
	command("answers", "Emit a blank answer sheet", []string{
		"quizbank answers [--file <path>] [--format yaml|json]",
	}, runAnswers),
	command("grade", "Check an answer against a question", []string{
		"quizbank grade --id <id> --answer <text> [--file <path>]",
	}, runGrade),
	command("add", "Append a blank question", []string{
		"quizbank add --name <name> --type <type> [--id <id>] [--file <path>]",
	}, runAdd),
	command("rename", "Rename a question", []string{
		"quizbank rename --id <id> --name <name> [--file <path>]",
	}, runRename),
	command("retype", "Change the type of a question", []string{
		"quizbank retype --id <id> --type <type> [--file <path>]",
	}, runRetype),
	command("option", "Append or replace an option", []string{
		"quizbank option --id <id> --text <option> [--index <n>] [--file <path>]",
	}, runOption),
	command("duplicate", "Copy a question right after itself", []string{
		"quizbank duplicate --id <id> [--new-id <id>] [--file <path>]",
	}, runDuplicate),
	command("remove", "Remove a question", []string{
		"quizbank remove --id <id> [--file <path>]",
	}, runRemove),
	command("publish", "Publish every question", []string{
		"quizbank publish [--file <path>]",
	}, runPublish),
}
