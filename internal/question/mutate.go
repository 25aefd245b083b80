package question

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound indicates that no question carries the requested id.
var ErrQuestionNotFound = errors.New("question not found")

// ErrOptionIndexOutOfRange indicates an option index that is neither -1 nor an existing position.
var ErrOptionIndexOutOfRange = errors.New("option index out of range")

// AppendOption is the option index that appends instead of replacing.
const AppendOption = -1

// PublishAll returns the questions with every one marked as published.
func PublishAll(questions []Question) []Question {
	published := cloneAll(questions)
	for i := range published {
		published[i].Published = true
	}
	return published
}

// AddNewQuestion appends a blank question to a copy of questions.
func AddNewQuestion(questions []Question, id int, name string, questionType Type) []Question {
	return append(cloneAll(questions), MakeBlankQuestion(id, name, questionType))
}

// RenameQuestionByID renames the question with targetID. Unknown ids leave
// the collection unchanged.
func RenameQuestionByID(questions []Question, targetID int, newName string) []Question {
	return updateByID(questions, targetID, func(q *Question) {
		q.Name = newName
	})
}

// ChangeQuestionTypeByID sets the type of the question with targetID. A question
// that was multiple choice before the change loses its options, whatever the
// new type is.
func ChangeQuestionTypeByID(questions []Question, targetID int, newType Type) []Question {
	return updateByID(questions, targetID, func(q *Question) {
		if q.Type == MultipleChoice {
			q.Options = []string{}
		}
		q.Type = newType
	})
}

// EditOption replaces the option at targetOptionIndex of every question with
// targetID, or appends newOption when the index is AppendOption. Unknown ids
// leave the collection unchanged; any other index outside the options of a
// matching question is an error.
func EditOption(questions []Question, targetID, targetOptionIndex int, newOption string) ([]Question, error) {
	if targetOptionIndex != AppendOption {
		for _, q := range questions {
			if q.ID == targetID && (targetOptionIndex < 0 || targetOptionIndex >= len(q.Options)) {
				return nil, fmt.Errorf("edit option of question %d: index %d with %d options: %w",
					targetID, targetOptionIndex, len(q.Options), ErrOptionIndexOutOfRange)
			}
		}
	}
	return updateByID(questions, targetID, func(q *Question) {
		if targetOptionIndex == AppendOption {
			q.Options = append(q.Options, newOption)
		} else {
			q.Options[targetOptionIndex] = newOption
		}
	}), nil
}

// DuplicateQuestionInArray inserts a copy of the question with targetID,
// carrying newID, directly after the original.
func DuplicateQuestionInArray(questions []Question, targetID, newID int) ([]Question, error) {
	index := indexOf(questions, targetID)
	if index < 0 {
		return nil, fmt.Errorf("duplicate question %d: %w", targetID, ErrQuestionNotFound)
	}
	duplicated := make([]Question, 0, len(questions)+1)
	for i, q := range questions {
		duplicated = append(duplicated, q.Clone())
		if i == index {
			duplicated = append(duplicated, DuplicateQuestion(newID, q))
		}
	}
	return duplicated, nil
}

// NextID returns one more than the largest id in use, or 1 for an empty collection.
func NextID(questions []Question) int {
	next := 1
	for _, q := range questions {
		if q.ID >= next {
			next = q.ID + 1
		}
	}
	return next
}

// updateByID applies edit to copies of the questions carrying targetID.
func updateByID(questions []Question, targetID int, edit func(*Question)) []Question {
	updated := cloneAll(questions)
	for i := range updated {
		if updated[i].ID == targetID {
			edit(&updated[i])
		}
	}
	return updated
}
