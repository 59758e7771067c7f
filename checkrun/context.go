package checkrun

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results     Results
	checkLogger CheckLogger
	filter      Filter
}

// Context carries the state of one running check. It satisfies the
// Errorf/FailNow contract of testify's assert and require packages, so a
// *Context can be used wherever those expect a *testing.T.
type Context struct {
	env         *environment
	id          CheckID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a tree of checks, returning the accumulated results. The
// action receives the root Context and calls Context.Run to define the
// individual checks.
func Run(
	filter Filter,
	checkLogger CheckLogger,
	action func(*Context),
) Results {
	if checkLogger == nil {
		checkLogger = nullCheckLogger{}
	}
	env := &environment{
		filter:      filter,
		checkLogger: checkLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.checkLogger.CheckError(c.id, addError)
			}
		}
		result := CheckResult{CheckID: c.id, Errors: c.errors}
		c.env.results.Checks = append(c.env.results.Checks, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// ID returns the identifier of the current check.
func (c *Context) ID() CheckID {
	return c.id
}

// Run executes a named child check, in the same way as the Run method of
// testing.T runs a subtest.
func (c *Context) Run(name string, action func(*Context)) {
	id := CheckID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.checkLogger.CheckStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.checkLogger.CheckSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.checkLogger.CheckSkipped(id, c1.skipReason)
	} else {
		c.env.checkLogger.CheckFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a check failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.checkLogger.CheckError(c.id, err)
}

// FailNow aborts the current check immediately. Any failure message should
// already have been recorded with Errorf, as testify's require package does.
func (c *Context) FailNow() {
	panic(c)
}

// Skip abandons the current check without failing it.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug writes to the check's captured debug output, which the check logger
// may display for failed checks.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
