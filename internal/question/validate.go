package question

import (
	"fmt"
	"strings"
)

// SupportedVersion is the only bank document version understood by this package.
const SupportedVersion = 1

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims names, fills missing option lists, and validates a bank.
// Options on short answer questions are accepted as-is.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != SupportedVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}

	normalized := make([]Question, 0, len(bank.Questions))
	seenIDs := map[int]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q = q.Clone()
		if q.ID <= 0 {
			collector.add(prefix+".id", "must be a positive integer")
		} else if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}

		q.Name = strings.TrimSpace(q.Name)
		if !q.Type.Valid() {
			collector.add(prefix+".type", "is required")
		}
		if q.Points < 0 {
			collector.add(prefix+".points", fmt.Sprintf("must not be negative, got %d", q.Points))
		}
		if q.Options == nil {
			q.Options = []string{}
		}
		normalized = append(normalized, q)
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	bank.Questions = normalized
	return bank, nil
}
