package question

import "testing"

// TestGetPublishedQuestions verifies only published questions survive, in order.
func TestGetPublishedQuestions(t *testing.T) {
	questions := sampleQuestions()
	got := GetPublishedQuestions(questions)
	want := []Question{questions[0], questions[2]}
	assertQuestions(t, got, want)
	assertNotAliased(t, got, questions)

	if got := GetPublishedQuestions(nil); len(got) != 0 {
		t.Fatalf("expected no questions, got %+v", got)
	}
	if got := GetPublishedQuestions(blankQuestions()); len(got) != 0 {
		t.Fatalf("expected blank questions to be unpublished, got %+v", got)
	}
}

// TestGetNonEmptyQuestions verifies exactly the empty questions are dropped.
func TestGetNonEmptyQuestions(t *testing.T) {
	questions := blankQuestions()
	got := GetNonEmptyQuestions(questions)
	want := []Question{questions[2], questions[3]}
	assertQuestions(t, got, want)

	full := sampleQuestions()
	assertQuestions(t, GetNonEmptyQuestions(full), full)
}

// TestFindQuestion verifies lookup by id and the not-found result.
func TestFindQuestion(t *testing.T) {
	questions := sampleQuestions()
	found, ok := FindQuestion(questions, 5)
	if !ok {
		t.Fatalf("expected question 5 to be found")
	}
	if found.Name != "Colors" {
		t.Fatalf("expected Colors, got %q", found.Name)
	}
	found.Options[0] = "changed"
	if questions[2].Options[0] != "red" {
		t.Fatalf("expected found question not to alias input options")
	}

	if _, ok := FindQuestion(questions, 3); ok {
		t.Fatalf("expected question 3 to be missing")
	}
	if _, ok := FindQuestion(nil, 1); ok {
		t.Fatalf("expected lookup in empty collection to fail")
	}
}

// TestFindQuestionReturnsFirstMatch verifies duplicated ids resolve to the first element.
func TestFindQuestionReturnsFirstMatch(t *testing.T) {
	questions := []Question{
		MakeBlankQuestion(7, "first", ShortAnswer),
		MakeBlankQuestion(7, "second", ShortAnswer),
	}
	found, ok := FindQuestion(questions, 7)
	if !ok || found.Name != "first" {
		t.Fatalf("expected first match, got %+v (found=%v)", found, ok)
	}
}

// TestRemoveQuestion verifies removal by id and the unchanged result for unknown ids.
func TestRemoveQuestion(t *testing.T) {
	questions := sampleQuestions()

	got := RemoveQuestion(questions, 2)
	if len(got) != len(questions)-1 {
		t.Fatalf("expected %d questions, got %d", len(questions)-1, len(got))
	}
	assertQuestions(t, got, []Question{questions[0], questions[2], questions[3]})

	unchanged := RemoveQuestion(questions, 100)
	assertQuestions(t, unchanged, questions)
	assertNotAliased(t, unchanged, questions)

	assertQuestions(t, questions, sampleQuestions())
}
