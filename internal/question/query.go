package question

// GetPublishedQuestions returns the published questions in their original order.
func GetPublishedQuestions(questions []Question) []Question {
	return filter(questions, func(q Question) bool { return q.Published })
}

// GetNonEmptyQuestions drops every question that has no body, no expected
// answer and no options.
func GetNonEmptyQuestions(questions []Question) []Question {
	return filter(questions, func(q Question) bool {
		return q.Body != "" || q.Expected != "" || len(q.Options) != 0
	})
}

// FindQuestion returns the first question with the given id. The boolean is
// false when no question matches.
func FindQuestion(questions []Question, id int) (Question, bool) {
	index := indexOf(questions, id)
	if index < 0 {
		return Question{}, false
	}
	return questions[index].Clone(), true
}

// RemoveQuestion returns the questions without the one carrying id.
func RemoveQuestion(questions []Question, id int) []Question {
	return filter(questions, func(q Question) bool { return q.ID != id })
}

// filter copies the questions accepted by keep. The result never aliases the input.
func filter(questions []Question, keep func(Question) bool) []Question {
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if keep(q) {
			kept = append(kept, q.Clone())
		}
	}
	return kept
}

func indexOf(questions []Question, id int) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
