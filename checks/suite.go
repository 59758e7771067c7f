package checks

import (
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
	"github.com/statusexpect/httpstatus-matchers/httpstatus"
	"github.com/statusexpect/httpstatus-matchers/service"
)

// RunSuite executes every definition as a named check against the service,
// returning the accumulated results.
func RunSuite(
	client *service.Client,
	defs []Definition,
	filter checkrun.Filter,
	logger checkrun.CheckLogger,
) checkrun.Results {
	return checkrun.Run(filter, logger, func(c *checkrun.Context) {
		for _, def := range defs {
			def := def
			c.Run(def.Name, func(c *checkrun.Context) {
				t := &T{context: c, client: client}
				t.runDefinition(def)
			})
		}
	})
}

// T represents one running check.
//
// It implements the same basic reporting contract as Go's testing.T, but in
// an environment outside the Go test runner. To make assertions inside a
// check, you can use the testify assert and require packages, passing the *T
// as if it were a *testing.T.
type T struct {
	context *checkrun.Context
	client  *service.Client
}

// Errorf is called by assertions to record a check failure. It does not
// cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a check should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Debug writes to the check's captured debug output.
func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

// RequireStatus asserts that the candidate has the targeted status, aborting
// the check on failure. An invalid target aborts the check as well, since it
// means the check itself is wrong.
func (t *T) RequireStatus(candidate interface{}, target interface{}) {
	m, err := httpstatus.HaveStatus(target)
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
	if !m.Matches(candidate) {
		t.Errorf("%s", m.FailureMessage())
		t.FailNow()
	}
}

// RequireNotStatus is the negated form of RequireStatus.
func (t *T) RequireNotStatus(candidate interface{}, target interface{}) {
	m, err := httpstatus.HaveStatus(target)
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
	if m.Matches(candidate) {
		t.Errorf("%s", m.FailureMessageWhenNegated())
		t.FailNow()
	}
}

func (t *T) runDefinition(def Definition) {
	// The expectation was validated at load time; a failure here means the
	// definition was built in code with a bad target.
	matcher, err := httpstatus.HaveStatus(def.Expect.Target())
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}

	method := def.Method
	if method == "" {
		method = "GET"
	}

	headers := def.Headers
	var body []byte
	if !def.Body.IsNull() {
		body = []byte(def.Body.JSONString())
		headers = withContentType(headers, "application/json")
	}

	resp, err := t.client.Do(method, def.Path, headers, body)
	require.NoError(t, err, "request for check could not be sent")

	t.Debug("%s %s returned %d", method, def.Path, resp.StatusCode)
	if !matcher.Matches(resp) {
		t.Errorf("%s", matcher.FailureMessage())
	}
}

// withContentType returns a copy of headers with a Content-Type added, unless
// the definition already set one.
func withContentType(headers map[string]string, contentType string) map[string]string {
	ret := make(map[string]string, len(headers)+1)
	hasContentType := false
	for name, value := range headers {
		if http.CanonicalHeaderKey(name) == "Content-Type" {
			hasContentType = true
		}
		ret[name] = value
	}
	if !hasContentType {
		ret["Content-Type"] = contentType
	}
	return ret
}
