package checkrun

import (
	"fmt"
	"strings"
)

// CheckID identifies a check within a run as the path of names from the root
// of the check tree.
type CheckID struct {
	Path []string
}

func (id CheckID) String() string {
	return strings.Join(id.Path, "/")
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	CheckID CheckID
	Errors  []error
	Skipped bool
}

// Results accumulates the outcomes of an entire run.
type Results struct {
	Checks   []CheckResult
	Failures []CheckResult
}

// OK reports whether every check that ran passed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// CheckFailure wraps a check error together with the ID of the check that
// produced it.
type CheckFailure struct {
	ID  CheckID
	Err error
}

func (f CheckFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
