// Package service is a thin HTTP client for the service whose status
// behavior is being checked.
package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
)

// Client sends requests to the service under test. It does not interpret the
// responses; that is the job of the matchers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     checkrun.Logger
}

// NewClient creates a Client for a service at the given base URL. A nil
// logger disables debug logging.
func NewClient(baseURL string, logger checkrun.Logger) *Client {
	if logger == nil {
		logger = checkrun.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// BaseURL returns the normalized base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WaitUntilAvailable polls the service's base URL until it responds with any
// HTTP status, writing progress dots to output. Whether the status is a
// healthy one is for the checks themselves to decide; here we only need
// evidence that something is listening.
func (c *Client) WaitUntilAvailable(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to service at %s", c.baseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := c.httpClient.Get(c.baseURL)
		if err == nil {
			fmt.Fprintln(output)
			if resp.Body != nil {
				resp.Body.Close()
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("service did not respond within %s; result of last query was: %w", timeout, err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

// Do sends a single request and returns the raw response. Redirects are
// returned as-is rather than followed, since 3xx statuses are often exactly
// what a check is asserting on.
func (c *Client) Do(method, path string, headers map[string]string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	c.logger.Printf("%s %s", method, req.URL)
	noRedirects := *c.httpClient
	noRedirects.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err := noRedirects.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL, err)
	}
	c.logger.Printf("%s %s returned %d", method, req.URL, resp.StatusCode)
	return resp, nil
}
