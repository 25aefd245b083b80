package question

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownType indicates a question type outside the two supported variants.
var ErrUnknownType = errors.New("unknown question type")

// Type is the kind of a question. The zero value is not a valid type.
type Type uint8

const (
	ShortAnswer Type = iota + 1
	MultipleChoice
)

const (
	shortAnswerName    = "short_answer_question"
	multipleChoiceName = "multiple_choice_question"
)

// ParseType converts the textual form of a question type.
func ParseType(value string) (Type, error) {
	switch value {
	case shortAnswerName:
		return ShortAnswer, nil
	case multipleChoiceName:
		return MultipleChoice, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownType, value)
	}
}

// String returns the textual form used in bank files.
func (t Type) String() string {
	switch t {
	case ShortAnswer:
		return shortAnswerName
	case MultipleChoice:
		return multipleChoiceName
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the supported variants.
func (t Type) Valid() bool {
	return t == ShortAnswer || t == MultipleChoice
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownType, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Question is a single quiz item.
type Question struct {
	ID        int      `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Type      Type     `json:"type" yaml:"type"`
	Body      string   `json:"body" yaml:"body"`
	Expected  string   `json:"expected" yaml:"expected"`
	Options   []string `json:"options" yaml:"options"`
	Points    int      `json:"points" yaml:"points"`
	Published bool     `json:"published" yaml:"published"`
}

// Clone returns a copy of q that shares no storage with it.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// IsEmpty reports whether the question has no body, no expected answer and no options.
func (q Question) IsEmpty() bool {
	return q.Body == "" && q.Expected == "" && len(q.Options) == 0
}

// Answer is a response slot derived from a question.
type Answer struct {
	QuestionID int    `json:"questionId" yaml:"questionId"`
	Text       string `json:"text" yaml:"text"`
	Submitted  bool   `json:"submitted" yaml:"submitted"`
	Correct    bool   `json:"correct" yaml:"correct"`
}

// Bank is the on-disk question bank document.
type Bank struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

func cloneAll(questions []Question) []Question {
	cloned := make([]Question, 0, len(questions))
	for _, q := range questions {
		cloned = append(cloned, q.Clone())
	}
	return cloned
}
