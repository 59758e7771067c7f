// Package checks defines and runs declarative status checks: each check
// sends one HTTP request to the service under test and asserts on the status
// of the response using the httpstatus matchers.
package checks

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/statusexpect/httpstatus-matchers/httpstatus"
)

// Definition describes one check as it appears in a checks file.
type Definition struct {
	Name    string            `json:"name"`
	Method  string            `json:"method,omitempty"` // defaults to GET
	Path    string            `json:"path"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    ldvalue.Value     `json:"body,omitempty"`
	Expect  Expectation       `json:"expect"`
}

// Expectation is the polymorphic "expect" field of a check definition. In
// JSON it is either a number (an exact status code) or a string (a category
// label or a symbolic status name); either way it becomes a matcher target.
type Expectation struct {
	target interface{}
}

// ExpectationOf wraps an already-typed matcher target, for definitions built
// in code rather than parsed from JSON.
func ExpectationOf(target interface{}) Expectation {
	return Expectation{target: target}
}

// Target returns the matcher target to pass to httpstatus.HaveStatus.
func (e Expectation) Target() interface{} {
	return e.target
}

func (e Expectation) IsDefined() bool {
	return e.target != nil
}

func (e *Expectation) UnmarshalJSON(data []byte) error {
	v := ldvalue.Parse(data)
	switch v.Type() {
	case ldvalue.NumberType:
		e.target = v.IntValue()
	case ldvalue.StringType:
		e.target = v.StringValue()
	default:
		return fmt.Errorf("status expectation must be a number or a string, got %s", string(data))
	}
	return nil
}

func (e Expectation) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.target)
}

// Parse reads a checks file: a JSON array of Definitions. Every definition
// is validated here, including its expectation, so that a bad target is
// reported before any request is sent.
func Parse(data []byte) ([]Definition, error) {
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("malformed checks file: %w", err)
	}
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("check #%d has no name", i+1)
		}
		if def.Path == "" {
			return nil, fmt.Errorf("check %q has no path", def.Name)
		}
		if !def.Expect.IsDefined() {
			return nil, fmt.Errorf("check %q has no expected status", def.Name)
		}
		if _, err := httpstatus.HaveStatus(def.Expect.Target()); err != nil {
			return nil, fmt.Errorf("check %q: %w", def.Name, err)
		}
	}
	return defs, nil
}

// Load reads and parses a checks file from disk.
func Load(path string) ([]Definition, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
