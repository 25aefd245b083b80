package cli

import (
	"flag"
	"fmt"
	"io"

	"quizbank/internal/question"
)

// runCSV builds the handler for the csv command.
func runCSV(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		var published bool
		inv, code, ok := start(cmd, args, stdout, stderr, func(flags *flag.FlagSet) {
			flags.BoolVar(&published, "published", false, "Only export published questions")
		})
		if !ok {
			return code
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}

		questions := bank.Questions
		if published {
			questions = question.GetPublishedQuestions(questions)
		}
		fmt.Fprintln(stdout, question.ToCSV(questions))
		return inv.finish(ExitOK)
	}
}
