package httpstatus

import "fmt"

// Matcher evaluates whether a candidate response has the targeted status.
// Matches must be called before either message method; the messages describe
// the outcome of that one call.
type Matcher interface {
	// Matches reports whether the candidate satisfies the target status.
	// A candidate that is not a recognizable response shape is a normal
	// non-match, not an error.
	Matches(candidate interface{}) bool

	// FailureMessage describes why a positive assertion failed.
	FailureMessage() string

	// FailureMessageWhenNegated describes why a negative assertion failed,
	// i.e. the candidate matched when it should not have.
	FailureMessageWhenNegated() string
}

// InvalidStatusError indicates that a matcher target was unusable: nil, an
// unknown symbolic name, or a type that cannot describe a status. This is a
// programmer error in the assertion itself and is reported at construction
// time, before any candidate is examined.
type InvalidStatusError struct {
	message string
}

func (e *InvalidStatusError) Error() string {
	return e.message
}

func invalidStatusError(format string, args ...interface{}) *InvalidStatusError {
	return &InvalidStatusError{message: fmt.Sprintf(format, args...)}
}

// HaveStatus creates a Matcher for the given target. The target may be:
//
//   - any integer type: match that exact status code;
//   - a Category, or a string equal to one of the category labels: match
//     any code in the category (category labels take priority over symbolic
//     lookup);
//   - any other string: match the code that the symbolic name maps to,
//     e.g. "created" for 201.
//
// A nil target, an unknown symbol, or an unsupported target type fails with
// *InvalidStatusError.
func HaveStatus(target interface{}) (Matcher, error) {
	if target == nil {
		return nil, invalidStatusError("Invalid HTTP status: nil")
	}
	switch t := target.(type) {
	case Category:
		return newCategoryMatcher(t)
	case string:
		if IsCategory(t) {
			return newCategoryMatcher(Category(t))
		}
		return newSymbolicMatcher(t)
	}
	if code, ok := targetCode(target); ok {
		return newNumericMatcher(code), nil
	}
	return nil, invalidStatusError("Invalid HTTP status: %v (%T)", target, target)
}

// MustHaveStatus is like HaveStatus but panics on an invalid target. It is
// for callers that supply the target as a literal, where an invalid value
// can only be a bug.
func MustHaveStatus(target interface{}) Matcher {
	m, err := HaveStatus(target)
	if err != nil {
		panic(err)
	}
	return m
}

func targetCode(target interface{}) (int, bool) {
	switch t := target.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return int(t), true
	}
	return 0, false
}

// matchState holds the per-assertion result shared by all matcher variants:
// the actual status code seen, or the candidate that failed normalization.
type matchState struct {
	actual           int
	invalidCandidate interface{}
	candidateInvalid bool
}

// captureActual normalizes the candidate and records the outcome. It returns
// false when the candidate is not a recognizable response, which the variants
// treat as a non-match.
func (s *matchState) captureActual(candidate interface{}) bool {
	resp, err := Normalize(candidate)
	if err != nil {
		s.candidateInvalid = true
		s.invalidCandidate = candidate
		return false
	}
	s.actual = resp.StatusCode
	return true
}

func (s *matchState) invalidCandidateMessage() string {
	return fmt.Sprintf("expected a response object, but an instance of %T was received", s.invalidCandidate)
}
