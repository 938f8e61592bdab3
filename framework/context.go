package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	warnings    []string
	details     string
	recorded    TestResult
}

func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
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
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		if len(c.id.Path) == 0 {
			// the root scope is not itself a test, so it records no result
			return
		}
		result := TestResult{
			TestID:    c.id,
			Errors:    c.errors,
			Warnings:  c.warnings,
			Details:   c.details,
			Timestamp: time.Now(),
		}
		c.recorded = result
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a named test in its own scope and reports whether it passed. A test
// excluded by the filter is only logged as skipped; it records no result and
// counts as passed for sequencing purposes.
func (c *Context) Run(name string, action func(*Context)) bool {
	path := append(append([]string(nil), c.id.Path...), name)
	id := TestID{Path: path}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return true
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
		return true
	}
	c.env.testLogger.TestFinished(id, c1.recorded, c1.debugLogger.Output())
	return !c1.failed
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Warnf records a warning on the current test. Warnings are reported to the
// test logger and included in the report, but do not affect pass/fail status.
func (c *Context) Warnf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	c.warnings = append(c.warnings, message)
	c.env.testLogger.TestWarning(c.id, message)
}

// Detailf sets the one-line details string recorded with this test's result.
func (c *Context) Detailf(format string, args ...interface{}) {
	c.details = fmt.Sprintf(format, args...)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
