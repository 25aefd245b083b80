package question

import (
	"slices"
	"strconv"
	"strings"
)

// MakeBlankQuestion returns an unpublished question with no content and no points.
func MakeBlankQuestion(id int, name string, questionType Type) Question {
	return Question{
		ID:        id,
		Name:      name,
		Type:      questionType,
		Body:      "",
		Expected:  "",
		Options:   []string{},
		Points:    0,
		Published: false,
	}
}

// DuplicateQuestion returns a deep copy of source carrying newID.
func DuplicateQuestion(newID int, source Question) Question {
	duplicate := source.Clone()
	duplicate.ID = newID
	return duplicate
}

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// IsCorrect compares answer with the expected answer, ignoring case and surrounding space.
func IsCorrect(q Question, answer string) bool {
	return NormalizeAnswerText(answer) == NormalizeAnswerText(q.Expected)
}

// IsValid reports whether answer is acceptable for the question's type.
// Multiple choice answers must match one of the options exactly.
func IsValid(q Question, answer string) bool {
	if q.Type != MultipleChoice {
		return true
	}
	return slices.Contains(q.Options, answer)
}

// ToShortForm renders "<id>: <first ten characters of the name>".
func ToShortForm(q Question) string {
	name := []rune(q.Name)
	if len(name) > 10 {
		name = name[:10]
	}
	return strconv.Itoa(q.ID) + ": " + string(name)
}

// ToMarkdown renders the question as a markdown heading, the body, and the options list.
func ToMarkdown(q Question) string {
	var builder strings.Builder
	builder.WriteString("# ")
	builder.WriteString(q.Name)
	builder.WriteString("\n")
	builder.WriteString(q.Body)
	if q.Type == MultipleChoice {
		for _, option := range q.Options {
			builder.WriteString("\n- ")
			builder.WriteString(option)
		}
	}
	return builder.String()
}

// Grade marks a copy of answer as submitted and records whether it is correct.
func Grade(q Question, answer Answer) Answer {
	answer.Submitted = true
	answer.Correct = IsCorrect(q, answer.Text)
	return answer
}
