package cli

import (
	"flag"
	"fmt"
	"io"

	"quizbank/internal/question"
)

// runShow builds the handler for the show command.
func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		var id int
		inv, code, ok := start(cmd, args, stdout, stderr, func(flags *flag.FlagSet) {
			flags.IntVar(&id, "id", 0, "Question id")
		})
		if !ok {
			return code
		}
		if id <= 0 {
			return inv.usageError("--id is required")
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}

		q, found := question.FindQuestion(bank.Questions, id)
		if !found {
			fmt.Fprintf(stderr, "Question %d not found\n", id)
			return inv.finish(ExitError)
		}
		fmt.Fprintln(stdout, question.ToMarkdown(q))
		return inv.finish(ExitOK)
	}
}
