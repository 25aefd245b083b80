package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"quizbank/internal/question"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

var questionColumnTitles = []string{"ID", "Name", "Type", "Options", "Points", "Published"}

// questionRow converts a question into table cells.
func questionRow(q question.Question) table.Row {
	return table.Row{
		strconv.Itoa(q.ID),
		formatName(q.Name),
		q.Type.String(),
		strconv.Itoa(len(q.Options)),
		strconv.Itoa(q.Points),
		strconv.FormatBool(q.Published),
	}
}

// formatName collapses whitespace and truncates long names for display.
func formatName(name string) string {
	normalized := strings.Join(strings.Fields(name), " ")
	const limit = 40
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// renderQuestionTable renders questions with columns sized to their content.
func renderQuestionTable(questions []question.Question, color bool) string {
	rows := make([]table.Row, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, questionRow(q))
	}

	columns := make([]table.Column, len(questionColumnTitles))
	totalWidth := 0
	for i, title := range questionColumnTitles {
		width := lipgloss.Width(title)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: title, Width: width}
		totalWidth += width + 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(tableStyles(color)),
		table.WithWidth(totalWidth),
		table.WithHeight(len(rows)+2),
	)
	return t.View()
}

// tableStyles returns table styles for the question list.
func tableStyles(color bool) table.Styles {
	if !color {
		return table.Styles{
			Header:   lipgloss.NewStyle().Bold(false).Padding(0, 1),
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle(),
		}
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// stylize applies a foreground color when color output is enabled.
func stylize(text string, color bool, c lipgloss.Color) string {
	if !color {
		return text
	}
	return lipgloss.NewStyle().Foreground(c).Render(text)
}

// yesNo renders a boolean for summaries.
func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
