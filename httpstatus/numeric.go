package httpstatus

import "fmt"

// numericMatcher matches an exact numeric status code.
type numericMatcher struct {
	matchState
	expected int
}

func newNumericMatcher(expected int) *numericMatcher {
	return &numericMatcher{expected: expected}
}

func (m *numericMatcher) Matches(candidate interface{}) bool {
	if !m.captureActual(candidate) {
		return false
	}
	return m.actual == m.expected
}

func (m *numericMatcher) FailureMessage() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response to have status code %d but it was %d", m.expected, m.actual)
}

func (m *numericMatcher) FailureMessageWhenNegated() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response not to have status code %d but it did", m.expected)
}
