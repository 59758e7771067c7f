package checks

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
	"github.com/statusexpect/httpstatus-matchers/service"
)

// newFakeService runs a local server with a few routes whose statuses the
// suites in these tests assert on. Unregistered paths return 404 courtesy of
// http.ServeMux.
func newFakeService(t *testing.T) *service.Client {
	mux := http.NewServeMux()
	mux.Handle("/ok", httphelpers.HandlerWithStatus(200))
	mux.Handle("/widgets", httphelpers.HandlerWithStatus(201))
	mux.Handle("/broken", httphelpers.HandlerWithStatus(503))

	redirectHeaders := make(http.Header)
	redirectHeaders.Set("Location", "/ok")
	mux.Handle("/old", httphelpers.HandlerWithResponse(302, redirectHeaders, nil))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return service.NewClient(server.URL, nil)
}

func TestRunSuiteAllPassing(t *testing.T) {
	client := newFakeService(t)
	defs, err := Parse([]byte(`[
		{"name": "root resource responds", "path": "/ok", "expect": "success"},
		{"name": "widget creation returns created", "method": "POST", "path": "/widgets",
		 "body": {"color": "red"}, "expect": "created"},
		{"name": "old path redirects", "path": "/old", "expect": "redirect"},
		{"name": "unknown path is missing", "path": "/nonexistent", "expect": "missing"},
		{"name": "broken endpoint reports an error", "path": "/broken", "expect": 503}
	]`))
	require.NoError(t, err)

	results := RunSuite(client, defs, nil, nil)
	assert.True(t, results.OK(), "failures: %+v", results.Failures)
}

func TestRunSuiteReportsStatusMismatch(t *testing.T) {
	client := newFakeService(t)
	defs := []Definition{
		{Name: "expects created but gets ok", Path: "/ok", Expect: ExpectationOf("created")},
	}

	results := RunSuite(client, defs, nil, nil)
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "expected the response to have status code created (201) but it was ok (200)",
		results.Failures[0].Errors[0].Error())
}

func TestRunSuiteReportsCategoryMismatch(t *testing.T) {
	client := newFakeService(t)
	defs := []Definition{
		{Name: "expects success but service is broken", Path: "/broken", Expect: ExpectationOf("success")},
	}

	results := RunSuite(client, defs, nil, nil)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "expected the response to have a success status code (2xx) but it was 503",
		results.Failures[0].Errors[0].Error())
}

func TestRunSuiteFiltersChecks(t *testing.T) {
	client := newFakeService(t)
	defs := []Definition{
		{Name: "runs", Path: "/ok", Expect: ExpectationOf(200)},
		{Name: "filtered out", Path: "/broken", Expect: ExpectationOf(200)},
	}

	var filters checkrun.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("filtered"))

	results := RunSuite(client, defs, filters.AsFilter, nil)
	assert.True(t, results.OK())
	require.Len(t, results.Checks, 2) // root plus the one check that ran
	assert.Equal(t, "runs", results.Checks[0].CheckID.String())
}

func TestRunSuiteUnreachableServiceFailsCheck(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close()
	client := service.NewClient(server.URL, nil)

	defs := []Definition{
		{Name: "cannot connect", Path: "/", Expect: ExpectationOf(200)},
	}

	results := RunSuite(client, defs, nil, nil)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "cannot connect", results.Failures[0].CheckID.String())
}

func TestTRequireStatus(t *testing.T) {
	client := newFakeService(t)

	results := checkrun.Run(nil, nil, func(c *checkrun.Context) {
		c.Run("manual assertions", func(c *checkrun.Context) {
			scope := &T{context: c, client: client}
			resp, err := client.Do("GET", "/widgets", nil, nil)
			require.NoError(t, err)
			scope.RequireStatus(resp, "created")
			scope.RequireNotStatus(resp, "error")
		})
	})

	assert.True(t, results.OK(), "failures: %+v", results.Failures)
}

func TestTRequireStatusFailureAbortsCheck(t *testing.T) {
	client := newFakeService(t)

	reachedAfter := false
	results := checkrun.Run(nil, nil, func(c *checkrun.Context) {
		c.Run("failing assertion", func(c *checkrun.Context) {
			scope := &T{context: c, client: client}
			resp, err := client.Do("GET", "/ok", nil, nil)
			require.NoError(t, err)
			scope.RequireStatus(resp, "error")
			reachedAfter = true
		})
	})

	assert.False(t, reachedAfter)
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(),
		"expected the response to have an error status code (5xx) but it was 200")
}
