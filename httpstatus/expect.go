package httpstatus

// TestingT is the minimal test-reporting interface the Expect helpers need.
// It is satisfied by *testing.T and by checkrun.Context.
type TestingT interface {
	Errorf(format string, args ...interface{})
}

// ExpectStatus asserts that the candidate response has the targeted status,
// reporting a failure through t if it does not. An invalid target is also
// reported through t, since there is no matcher to evaluate. Returns true on
// success.
func ExpectStatus(t TestingT, candidate interface{}, target interface{}) bool {
	m, err := HaveStatus(target)
	if err != nil {
		t.Errorf("%s", err)
		return false
	}
	if !m.Matches(candidate) {
		t.Errorf("%s", m.FailureMessage())
		return false
	}
	return true
}

// ExpectNotStatus is the negated form of ExpectStatus: it fails when the
// candidate does have the targeted status.
func ExpectNotStatus(t TestingT, candidate interface{}, target interface{}) bool {
	m, err := HaveStatus(target)
	if err != nil {
		t.Errorf("%s", err)
		return false
	}
	if m.Matches(candidate) {
		t.Errorf("%s", m.FailureMessageWhenNegated())
		return false
	}
	return true
}
