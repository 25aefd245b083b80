package question

// GetNames returns the question names in order.
func GetNames(questions []Question) []string {
	names := make([]string, 0, len(questions))
	for _, q := range questions {
		names = append(names, q.Name)
	}
	return names
}

// SumPoints adds up the points of every question.
func SumPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}

// SumPublishedPoints adds up the points of the published questions.
func SumPublishedPoints(questions []Question) int {
	return SumPoints(GetPublishedQuestions(questions))
}

// SameType reports whether every question shares the first question's type.
// Empty and single-element collections are trivially homogeneous.
func SameType(questions []Question) bool {
	if len(questions) == 0 {
		return true
	}
	first := questions[0].Type
	for _, q := range questions[1:] {
		if q.Type != first {
			return false
		}
	}
	return true
}
