// Package modeltest checks generated data model types against their metadata
// and builds populated object trees for tests.
package modeltest

import (
	"fmt"
	"testing"
)

// Result represents the outcome of a check.
type Result struct {
	// Passed indicates if the check passed.
	Passed bool

	// Message describes the check result.
	Message string

	// Expected is the expected value (for error messages).
	Expected any

	// Actual is the actual value (for error messages).
	Actual any
}

// Pass creates a passing result.
func Pass(message string) *Result {
	return &Result{Passed: true, Message: message}
}

// Fail creates a failing result.
func Fail(message string, expected, actual any) *Result {
	return &Result{
		Passed:   false,
		Message:  message,
		Expected: expected,
		Actual:   actual,
	}
}

// String formats the result for test output.
func (r *Result) String() string {
	if r.Passed {
		return "PASS: " + r.Message
	}
	return fmt.Sprintf("FAIL: %s (expected %v, got %v)", r.Message, r.Expected, r.Actual)
}

// Failures returns the failing results.
func Failures(results []*Result) []*Result {
	var failed []*Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Report fails the test once for every failing result.
func Report(t testing.TB, results []*Result) {
	t.Helper()
	for _, r := range Failures(results) {
		t.Error(r)
	}
}
