package domain

import (
	"fmt"
	"time"

	"go.trai.ch/zerr"
)

// TestStatus is the final status of a single test.
type TestStatus string

const (
	// TestPassed indicates the test and its fixtures raised nothing.
	TestPassed TestStatus = "pass"
	// TestFailed indicates at least one assertion failure was reported.
	TestFailed TestStatus = "fail"
	// TestErrored indicates at least one error was reported and no failure.
	TestErrored TestStatus = "error"
)

// TestResult is the recorded outcome of one test or fixture.
type TestResult struct {
	Name     string
	Status   TestStatus
	Message  string
	Duration time.Duration
}

// SuiteOutcome accumulates failures and errors across suite runs.
type SuiteOutcome struct {
	Tests    int
	Failures int
	Errors   int
}

// Add merges another outcome into o.
func (o *SuiteOutcome) Add(other SuiteOutcome) {
	o.Tests += other.Tests
	o.Failures += other.Failures
	o.Errors += other.Errors
}

// Failed reports whether any failure or error was recorded.
func (o SuiteOutcome) Failed() bool {
	return o.Failures+o.Errors > 0
}

// Summary formats the outcome as "N failure(s) and M error(s)".
func (o SuiteOutcome) Summary() string {
	return fmt.Sprintf("%d %s and %d %s",
		o.Failures, plural(o.Failures, "failure"),
		o.Errors, plural(o.Errors, "error"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// SuiteResult is the result of running one script.
type SuiteResult struct {
	Script   string
	File     string
	Outcome  SuiteOutcome
	Tests    []TestResult
	Duration time.Duration
	Skipped  bool
	Err      error
}

// FailureMessage describes a failed run, e.g. "Tests failed with 1 failure and 0 errors".
func (o SuiteOutcome) FailureMessage() string {
	return "Tests failed with " + o.Summary()
}

// Err returns nil unless something failed. Otherwise it returns ErrTestsFailed
// wrapped with the failure message and the counts as metadata.
func (o SuiteOutcome) Err() error {
	if !o.Failed() {
		return nil
	}
	err := zerr.Wrap(ErrTestsFailed, o.FailureMessage())
	err = zerr.With(err, "failures", o.Failures)
	return zerr.With(err, "errors", o.Errors)
}
