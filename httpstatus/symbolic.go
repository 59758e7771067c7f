package httpstatus

import (
	"fmt"
	"strconv"
)

// symbolicMatcher matches the numeric code that a symbolic status name maps
// to, and narrates both sides of a failed match symbolically.
type symbolicMatcher struct {
	matchState
	expectedSymbol string
	expectedCode   int
}

func newSymbolicMatcher(symbol string) (*symbolicMatcher, error) {
	code, ok := CodeForSymbol(symbol)
	if !ok {
		return nil, invalidStatusError("Invalid HTTP status: %s", symbol)
	}
	return &symbolicMatcher{expectedSymbol: symbol, expectedCode: code}, nil
}

func (m *symbolicMatcher) Matches(candidate interface{}) bool {
	if !m.captureActual(candidate) {
		return false
	}
	return m.actual == m.expectedCode
}

func (m *symbolicMatcher) FailureMessage() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response to have status code %s but it was %s",
		m.describeExpected(), describeCode(m.actual))
}

func (m *symbolicMatcher) FailureMessageWhenNegated() string {
	if m.candidateInvalid {
		return m.invalidCandidateMessage()
	}
	return fmt.Sprintf("expected the response not to have status code %s but it did", m.describeExpected())
}

func (m *symbolicMatcher) describeExpected() string {
	return fmt.Sprintf("%s (%d)", m.expectedSymbol, m.expectedCode)
}

// describeCode renders a status code with its symbolic name when one exists,
// or as the bare number when none does.
func describeCode(code int) string {
	if symbol, ok := SymbolForCode(code); ok {
		return fmt.Sprintf("%s (%d)", symbol, code)
	}
	return strconv.Itoa(code)
}
