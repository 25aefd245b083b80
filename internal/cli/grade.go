package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/question"
)

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		var (
			id     int
			answer string
		)
		inv, code, ok := start(cmd, args, stdout, stderr, func(flags *flag.FlagSet) {
			flags.IntVar(&id, "id", 0, "Question id")
			flags.StringVar(&answer, "answer", "", "Answer text to check")
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
		if !question.IsValid(q, answer) {
			fmt.Fprintf(stderr, "Answer %q is not one of the options of question %d\n", answer, id)
			return inv.finish(ExitError)
		}

		graded := question.Grade(q, question.Answer{QuestionID: q.ID, Text: answer})
		inv.log.Debug("graded answer", "id", id, "correct", graded.Correct)
		if graded.Correct {
			fmt.Fprintf(stdout, "%s: %s (%d points)\n", question.ToShortForm(q), stylize("correct", inv.color(), lipgloss.Color("42")), q.Points)
		} else {
			fmt.Fprintf(stdout, "%s: %s\n", question.ToShortForm(q), stylize("incorrect", inv.color(), lipgloss.Color("196")))
		}
		return inv.finish(ExitOK)
	}
}
