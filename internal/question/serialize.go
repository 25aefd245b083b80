package question

import (
	"strconv"
	"strings"
)

// CSVHeader is the first line of ToCSV output.
const CSVHeader = "id,name,options,points,published"

// ToCSV renders one line per question after the header, using the number of
// options rather than their text. Fields are not quoted, so a comma in a name
// shifts the columns. There is no trailing newline.
func ToCSV(questions []Question) string {
	lines := make([]string, 0, len(questions)+1)
	lines = append(lines, CSVHeader)
	for _, q := range questions {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(q.ID),
			q.Name,
			strconv.Itoa(len(q.Options)),
			strconv.Itoa(q.Points),
			strconv.FormatBool(q.Published),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// MakeAnswers returns an unsubmitted, blank answer for each question.
func MakeAnswers(questions []Question) []Answer {
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, Answer{
			QuestionID: q.ID,
			Text:       "",
			Submitted:  false,
			Correct:    false,
		})
	}
	return answers
}
