package framework

import (
	"fmt"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID    TestID
	Errors    []error
	Warnings  []string
	Details   string
	Timestamp time.Time
}

func (r TestResult) Failed() bool {
	return len(r.Errors) > 0
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PassedCount returns the number of recorded tests that had no errors.
func (r Results) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Failed() {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
