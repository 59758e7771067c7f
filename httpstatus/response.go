package httpstatus

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
)

// Response is the canonical representation of an HTTP response that all
// matchers evaluate against. Normalize produces one from any of the accepted
// candidate shapes.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       string
}

// SessionResponse is the capability-based fallback shape accepted by
// Normalize. It matches browser-session-style wrappers that expose their
// last response through accessors, without this package depending on any
// particular such library.
type SessionResponse interface {
	StatusCode() int
	ResponseHeaders() http.Header
	Body() string
}

// UnsupportedResponseTypeError is returned by Normalize when a candidate
// matches none of the accepted response shapes. Matchers absorb it into a
// normal match failure; it never escapes Matches.
type UnsupportedResponseTypeError struct {
	Candidate interface{}
}

func (e *UnsupportedResponseTypeError) Error() string {
	return fmt.Sprintf("Invalid response type: %s", e.TypeName())
}

// TypeName returns the Go type of the rejected candidate, for use in
// failure messages.
func (e *UnsupportedResponseTypeError) TypeName() string {
	return fmt.Sprintf("%T", e.Candidate)
}

// Normalize coerces a response-like candidate into a Response. The accepted
// shapes are tried in a fixed priority order, each guarded by an explicit
// type check:
//
//  1. *http.Response — the live response from a real request. Its body is
//     read here and replaced with an equivalent in-memory reader, so the
//     caller can still consume it afterward.
//  2. Response or *Response — passed through unchanged, so normalizing an
//     already-normalized value is idempotent. *httptest.ResponseRecorder is
//     accepted in the same tier as the standard test-response object.
//  3. Any SessionResponse implementation.
//
// Anything else fails with *UnsupportedResponseTypeError.
func Normalize(candidate interface{}) (Response, error) {
	switch c := candidate.(type) {
	case *http.Response:
		if c == nil {
			break
		}
		var body string
		if c.Body != nil {
			data, err := ioutil.ReadAll(c.Body)
			c.Body.Close()
			if err != nil {
				return Response{}, fmt.Errorf("error reading response body: %w", err)
			}
			c.Body = ioutil.NopCloser(bytes.NewReader(data))
			body = string(data)
		}
		return Response{StatusCode: c.StatusCode, Headers: c.Header, Body: body}, nil
	case Response:
		return c, nil
	case *Response:
		if c == nil {
			break
		}
		return *c, nil
	case *httptest.ResponseRecorder:
		if c == nil {
			break
		}
		return Response{StatusCode: c.Code, Headers: c.Header(), Body: c.Body.String()}, nil
	}
	if s, ok := candidate.(SessionResponse); ok {
		return Response{StatusCode: s.StatusCode(), Headers: s.ResponseHeaders(), Body: s.Body()}, nil
	}
	return Response{}, &UnsupportedResponseTypeError{Candidate: candidate}
}
