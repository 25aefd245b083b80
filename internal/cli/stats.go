package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/question"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		inv, code, ok := start(cmd, args, stdout, stderr, nil)
		if !ok {
			return code
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}
		fmt.Fprint(stdout, renderStats(bank.Questions, inv.color()))
		return inv.finish(ExitOK)
	}
}

// renderStats summarizes a question collection, one labelled line per figure.
func renderStats(questions []question.Question, color bool) string {
	published := question.GetPublishedQuestions(questions)
	lines := [][2]string{
		{"Questions", strconv.Itoa(len(questions))},
		{"Published", strconv.Itoa(len(published))},
		{"Non-empty", strconv.Itoa(len(question.GetNonEmptyQuestions(questions)))},
		{"Total points", strconv.Itoa(question.SumPoints(questions))},
		{"Published points", strconv.Itoa(question.SumPublishedPoints(questions))},
		{"Same type", yesNo(question.SameType(questions))},
		{"Names", strings.Join(question.GetNames(questions), ", ")},
	}
	var builder strings.Builder
	for _, line := range lines {
		label := stylize(fmt.Sprintf("%-17s", line[0]+":"), color, lipgloss.Color("244"))
		builder.WriteString(label + " " + line[1] + "\n")
	}
	return builder.String()
}
