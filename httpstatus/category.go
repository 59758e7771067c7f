package httpstatus

import "fmt"

// categoryMatcher matches any status code inside one of the broad
// categories (success, redirect, missing, error).
type categoryMatcher struct {
	matchState
	expected Category
}

func newCategoryMatcher(expected Category) (*categoryMatcher, error) {
	if !IsCategory(string(expected)) {
		return nil, invalidStatusError("Invalid HTTP status category: %s", expected)
	}
	return &categoryMatcher{expected: expected}, nil
}

func (m *categoryMatcher) Matches(candidate interface{}) bool {
	if !m.captureActual(candidate) {
		return false
	}
	return m.expected.Contains(m.actual)
}

func (m *categoryMatcher) FailureMessage() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response to have %s status code (%s) but it was %d",
		m.expected.withArticle(), m.expected.RangeDescription(), m.actual)
}

func (m *categoryMatcher) FailureMessageWhenNegated() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response not to have %s status code (%s) but it was %d",
		m.expected.withArticle(), m.expected.RangeDescription(), m.actual)
}
