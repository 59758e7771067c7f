package httpstatus

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	status  int
	headers http.Header
	body    string
}

func (s fakeSession) StatusCode() int              { return s.status }
func (s fakeSession) ResponseHeaders() http.Header { return s.headers }
func (s fakeSession) Body() string                 { return s.body }

func TestNormalizeNativeResponse(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/plain")
	native := &http.Response{
		StatusCode: 201,
		Header:     headers,
		Body:       ioutil.NopCloser(bytes.NewReader([]byte("hello"))),
	}

	resp, err := Normalize(native)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Headers.Get("Content-Type"))
	assert.Equal(t, "hello", resp.Body)

	// The native response's body should still be readable afterward.
	data, err := ioutil.ReadAll(native.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestNormalizeNativeResponseWithNoBody(t *testing.T) {
	resp, err := Normalize(&http.Response{StatusCode: 204})
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, "", resp.Body)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	original := Response{StatusCode: 404, Body: "nope"}

	resp, err := Normalize(original)
	require.NoError(t, err)
	assert.Equal(t, original, resp)

	resp, err = Normalize(&original)
	require.NoError(t, err)
	assert.Equal(t, original, resp)
}

func TestNormalizeResponseRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("X-Thing", "yes")
	rec.WriteHeader(503)
	_, _ = rec.Write([]byte("unavailable"))

	resp, err := Normalize(rec)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
	assert.Equal(t, "yes", resp.Headers.Get("X-Thing"))
	assert.Equal(t, "unavailable", resp.Body)
}

func TestNormalizeSessionLikeObject(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Location", "/elsewhere")
	session := fakeSession{status: 302, headers: headers, body: "redirecting"}

	resp, err := Normalize(session)
	require.NoError(t, err)
	assert.Equal(t, Response{StatusCode: 302, Headers: headers, Body: "redirecting"}, resp)
}

func TestNormalizeRejectsUnsupportedShapes(t *testing.T) {
	for _, candidate := range []interface{}{
		nil,
		"not a response",
		200,
		map[string]string{"status": "200"},
		(*http.Response)(nil),
		(*Response)(nil),
		(*httptest.ResponseRecorder)(nil),
	} {
		_, err := Normalize(candidate)
		require.Error(t, err, "candidate %v should not normalize", candidate)
		typeErr, ok := err.(*UnsupportedResponseTypeError)
		require.True(t, ok, "expected *UnsupportedResponseTypeError, got %T", err)
		assert.Contains(t, typeErr.Error(), "Invalid response type")
	}
}

func TestUnsupportedResponseTypeErrorNamesTheType(t *testing.T) {
	_, err := Normalize(map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map[string]string")
}
