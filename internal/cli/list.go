package cli

import (
	"flag"
	"fmt"
	"io"

	"quizbank/internal/question"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		var published, nonEmpty bool
		inv, code, ok := start(cmd, args, stdout, stderr, func(flags *flag.FlagSet) {
			flags.BoolVar(&published, "published", false, "Only list published questions")
			flags.BoolVar(&nonEmpty, "non-empty", false, "Skip questions without body, expected answer or options")
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
		if nonEmpty {
			questions = question.GetNonEmptyQuestions(questions)
		}
		inv.log.Debug("filtered questions", "published", published, "nonEmpty", nonEmpty, "kept", len(questions))

		if len(questions) == 0 {
			fmt.Fprintln(stdout, "No questions")
			return inv.finish(ExitOK)
		}
		fmt.Fprintln(stdout, renderQuestionTable(questions, inv.color()))
		return inv.finish(ExitOK)
	}
}
