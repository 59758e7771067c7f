// Package checkrun is the engine that executes a suite of named checks and
// accumulates their results.
//
// The general model is:
//
// 1. A check is a piece of logic identified by a slash-delimited path. Checks
// can nest, like subtests under Go's *testing.T.
//
// 2. Each check runs against a Context, which collects failures and debug
// output for that check. Context implements the Errorf/FailNow contract, so
// assertion libraries written for *testing.T work against it.
//
// 3. A Filter decides which checks run; a CheckLogger observes progress; the
// final Results report everything that ran, failed, or was skipped.
//
// The domain-specific code that knows what is being checked (the checks
// package in this repository) is responsible for building the check tree and
// making assertions inside it.
package checkrun
