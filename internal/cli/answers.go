package cli

import (
	"fmt"
	"io"

	"quizbank/internal/question"
)

// runAnswers builds the handler for the answers command.
func runAnswers(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		inv, code, ok := start(cmd, args, stdout, stderr, nil)
		if !ok {
			return code
		}
		format, err := inv.outputFormat()
		if err != nil {
			return inv.usageError("invalid --format: %v", err)
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}

		if err := question.EncodeAnswers(stdout, question.MakeAnswers(bank.Questions), format); err != nil {
			fmt.Fprintf(stderr, "Failed to write answers: %v\n", err)
			return inv.finish(ExitError)
		}
		return inv.finish(ExitOK)
	}
}
