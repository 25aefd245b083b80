package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizbank/internal/question"
)

// edit describes a command that transforms the loaded questions and prints the resulting bank.
type edit struct {
	flags func(*flag.FlagSet)
	check func() error
	apply func(inv *invocation, questions []question.Question) ([]question.Question, error)
}

var errIDInUse = errors.New("id already in use")

// editHandler wires an edit into the shared flag, load, and output handling.
func editHandler(cmd *Command, build func() edit) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		e := build()
		inv, code, ok := start(cmd, args, stdout, stderr, e.flags)
		if !ok {
			return code
		}
		if e.check != nil {
			if err := e.check(); err != nil {
				return inv.usageError("%v", err)
			}
		}
		format, err := inv.outputFormat()
		if err != nil {
			return inv.usageError("invalid --format: %v", err)
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}

		edited, err := e.apply(inv, bank.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "%s failed: %v\n", cmd.Name, err)
			return inv.finish(ExitError)
		}
		inv.log.Info("edited question bank", "before", len(bank.Questions), "after", len(edited))
		if err := question.EncodeBank(stdout, question.Bank{Version: bank.Version, Questions: edited}, format); err != nil {
			fmt.Fprintf(stderr, "Failed to write question bank: %v\n", err)
			return inv.finish(ExitError)
		}
		return inv.finish(ExitOK)
	}
}

// warnIfMissing logs when an edit targets an id that is not in the bank.
func warnIfMissing(inv *invocation, questions []question.Question, id int) {
	if _, found := question.FindQuestion(questions, id); !found {
		inv.log.Warn("question not found; bank unchanged", "id", id)
	}
}

// ensureFreeID rejects ids that would collide with an existing question.
func ensureFreeID(questions []question.Question, id int) error {
	if _, found := question.FindQuestion(questions, id); found {
		return fmt.Errorf("question %d: %w", id, errIDInUse)
	}
	return nil
}

func requireID(id int) error {
	if id <= 0 {
		return errors.New("--id is required")
	}
	return nil
}

func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var (
			id       int
			name     string
			typeName string
			parsed   question.Type
		)
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Id for the new question (default: next free id)")
				flags.StringVar(&name, "name", "", "Name of the new question")
				flags.StringVar(&typeName, "type", "short_answer_question", "short_answer_question|multiple_choice_question")
			},
			check: func() error {
				if strings.TrimSpace(name) == "" {
					return errors.New("--name is required")
				}
				var err error
				parsed, err = question.ParseType(typeName)
				return err
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				newID := id
				if newID <= 0 {
					newID = question.NextID(questions)
				}
				if err := ensureFreeID(questions, newID); err != nil {
					return nil, err
				}
				inv.log.Debug("adding question", "id", newID, "type", parsed.String())
				return question.AddNewQuestion(questions, newID, strings.TrimSpace(name), parsed), nil
			},
		}
	})
}

func runRename(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var (
			id   int
			name string
		)
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Question id")
				flags.StringVar(&name, "name", "", "New name")
			},
			check: func() error {
				if err := requireID(id); err != nil {
					return err
				}
				if strings.TrimSpace(name) == "" {
					return errors.New("--name is required")
				}
				return nil
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				warnIfMissing(inv, questions, id)
				return question.RenameQuestionByID(questions, id, strings.TrimSpace(name)), nil
			},
		}
	})
}

func runRetype(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var (
			id       int
			typeName string
			parsed   question.Type
		)
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Question id")
				flags.StringVar(&typeName, "type", "", "short_answer_question|multiple_choice_question")
			},
			check: func() error {
				if err := requireID(id); err != nil {
					return err
				}
				var err error
				parsed, err = question.ParseType(typeName)
				return err
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				warnIfMissing(inv, questions, id)
				return question.ChangeQuestionTypeByID(questions, id, parsed), nil
			},
		}
	})
}

func runOption(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var (
			id    int
			index int
			text  string
		)
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Question id")
				flags.IntVar(&index, "index", question.AppendOption, "Option index to replace (-1 appends)")
				flags.StringVar(&text, "text", "", "Option text")
			},
			check: func() error {
				return requireID(id)
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				warnIfMissing(inv, questions, id)
				return question.EditOption(questions, id, index, text)
			},
		}
	})
}

func runDuplicate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var id, newID int
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Question id to copy")
				flags.IntVar(&newID, "new-id", 0, "Id for the copy (default: next free id)")
			},
			check: func() error {
				return requireID(id)
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				target := newID
				if target <= 0 {
					target = question.NextID(questions)
				}
				if err := ensureFreeID(questions, target); err != nil {
					return nil, err
				}
				return question.DuplicateQuestionInArray(questions, id, target)
			},
		}
	})
}

func runRemove(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		var id int
		return edit{
			flags: func(flags *flag.FlagSet) {
				flags.IntVar(&id, "id", 0, "Question id")
			},
			check: func() error {
				return requireID(id)
			},
			apply: func(inv *invocation, questions []question.Question) ([]question.Question, error) {
				warnIfMissing(inv, questions, id)
				return question.RemoveQuestion(questions, id), nil
			},
		}
	})
}

func runPublish(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return editHandler(cmd, func() edit {
		return edit{
			apply: func(_ *invocation, questions []question.Question) ([]question.Question, error) {
				return question.PublishAll(questions), nil
			},
		}
	})
}
