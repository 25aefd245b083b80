package question

import (
	"reflect"
	"testing"
)

// sampleQuestions returns a fresh fixture with mixed types, published flags and content.
func sampleQuestions() []Question {
	return []Question{
		{
			ID:        1,
			Name:      "Addition",
			Type:      ShortAnswer,
			Body:      "What is 2+2?",
			Expected:  "4",
			Options:   []string{},
			Points:    1,
			Published: true,
		},
		{
			ID:        2,
			Name:      "Letters",
			Type:      ShortAnswer,
			Body:      "What is the last letter of the English alphabet?",
			Expected:  "Z",
			Options:   []string{},
			Points:    1,
			Published: false,
		},
		{
			ID:        5,
			Name:      "Colors",
			Type:      MultipleChoice,
			Body:      "Which of these is a color?",
			Expected:  "red",
			Options:   []string{"red", "apple", "firetruck"},
			Points:    1,
			Published: true,
		},
		{
			ID:        9,
			Name:      "Shapes",
			Type:      MultipleChoice,
			Body:      "What shape can you make with one line?",
			Expected:  "circle",
			Options:   []string{"square", "triangle", "circle"},
			Points:    2,
			Published: false,
		},
	}
}

// blankQuestions returns questions where only some carry content.
func blankQuestions() []Question {
	return []Question{
		MakeBlankQuestion(1, "Question 1", MultipleChoice),
		MakeBlankQuestion(47, "My New Question", MultipleChoice),
		{ID: 2, Name: "Question 2", Type: ShortAnswer, Body: "", Expected: "x", Options: []string{}},
		{ID: 3, Name: "Question 3", Type: MultipleChoice, Options: []string{"a"}},
	}
}

// assertQuestions fails the test when got differs from want.
func assertQuestions(t *testing.T, got, want []Question) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected questions:\n got: %+v\nwant: %+v", got, want)
	}
}

// assertNotAliased fails when any Options slice of got shares storage with input.
func assertNotAliased(t *testing.T, got, input []Question) {
	t.Helper()
	for i := range got {
		if cap(got[i].Options) == 0 {
			continue
		}
		for j := range input {
			if cap(input[j].Options) == 0 {
				continue
			}
			if &got[i].Options[:1][0] == &input[j].Options[:1][0] {
				t.Fatalf("result question %d shares options with input question %d", got[i].ID, input[j].ID)
			}
		}
	}
}
