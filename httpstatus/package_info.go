// Package httpstatus implements matchers for asserting on the status of an
// HTTP response.
//
// A matcher is created from a target value, which can be an exact numeric
// status code (200), the symbolic name of a status code ("created"), or one
// of the broad categories defined by Category ("success", "redirect",
// "missing", "error"). The matcher is then given a candidate value, which
// can be any of several response-like shapes (see Normalize), and reports
// whether the candidate's status satisfies the target, along with
// human-readable failure messages for both assertion polarities.
//
// Matcher instances are single-use: create one per assertion, call Matches
// once, then read the failure message if needed.
package httpstatus
