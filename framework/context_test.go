package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecordsOneResultPerTest(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("first", func(c *Context) {})
		c.Run("second", func(c *Context) {})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, "first", results.Tests[0].TestID.String())
	assert.Equal(t, "second", results.Tests[1].TestID.String())
	assert.True(t, results.OK())
	assert.Equal(t, 2, results.PassedCount())
}

func TestErrorfMarksTestFailed(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("bad", func(c *Context) {
			c.Errorf("something went wrong: %d", 42)
		})
	})

	require.Len(t, results.Tests, 1)
	require.Len(t, results.Failures, 1)
	assert.False(t, results.OK())
	assert.Equal(t, 0, results.PassedCount())
	require.Len(t, results.Tests[0].Errors, 1)
	assert.Equal(t, "something went wrong: 42", results.Tests[0].Errors[0].Error())
}

func TestFailNowStopsTestButNotRun(t *testing.T) {
	secondRan := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("fatal")
			c.FailNow()
			c.Errorf("unreachable")
		})
		c.Run("still runs", func(c *Context) {
			secondRan = true
		})
	})

	assert.True(t, secondRan)
	require.Len(t, results.Tests, 2)
	require.Len(t, results.Tests[0].Errors, 1)
	assert.True(t, results.Tests[0].Failed())
	assert.False(t, results.Tests[1].Failed())
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("boom")
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Tests[0].Errors, 1)
	assert.Contains(t, results.Tests[0].Errors[0].Error(), "boom")
}

func TestFailNowWithNoMessageAddsPlaceholderError(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent failure", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Tests[0].Errors, 1)
	assert.Equal(t, errors.New("test failed with no failure message"), results.Tests[0].Errors[0])
}

func TestRunReturnValueReportsSuccess(t *testing.T) {
	_ = Run(nil, nil, func(c *Context) {
		assert.True(t, c.Run("passes", func(c *Context) {}))
		assert.False(t, c.Run("fails", func(c *Context) { c.Errorf("no") }))
	})
}

func TestFilterExcludesTestWithoutRecordingResult(t *testing.T) {
	filter := func(id TestID) bool { return id.String() != "excluded" }
	ran := false
	results := Run(filter, nil, func(c *Context) {
		assert.True(t, c.Run("excluded", func(c *Context) {
			ran = true
		}))
		c.Run("included", func(c *Context) {})
	})

	assert.False(t, ran)
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "included", results.Tests[0].TestID.String())
}

func TestWarningsAreRecordedButDoNotFail(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("warns", func(c *Context) {
			c.Warnf("missing field %q", "nome")
		})
	})

	require.Len(t, results.Tests, 1)
	assert.False(t, results.Tests[0].Failed())
	require.Len(t, results.Tests[0].Warnings, 1)
	assert.Equal(t, `missing field "nome"`, results.Tests[0].Warnings[0])
	assert.True(t, results.OK())
}

func TestDetailsAreRecordedWithResult(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("detailed", func(c *Context) {
			c.Detailf("Status: %d", 200)
		})
	})

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "Status: 200", results.Tests[0].Details)
}

func TestResultTimestampsAreNonDecreasing(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		for i := 0; i < 5; i++ {
			c.Run("test", func(c *Context) {})
		}
	})

	require.Len(t, results.Tests, 5)
	for i := 1; i < len(results.Tests); i++ {
		assert.False(t, results.Tests[i].Timestamp.Before(results.Tests[i-1].Timestamp))
	}
}

type capturingTestLogger struct {
	started  []string
	finished []string
	warnings []string
	skipped  []string
}

func (l *capturingTestLogger) TestStarted(id TestID)            { l.started = append(l.started, id.String()) }
func (l *capturingTestLogger) TestError(id TestID, err error)   {}
func (l *capturingTestLogger) TestWarning(id TestID, m string)  { l.warnings = append(l.warnings, m) }
func (l *capturingTestLogger) TestSkipped(id TestID, r string)  { l.skipped = append(l.skipped, id.String()) }
func (l *capturingTestLogger) TestFinished(id TestID, result TestResult, debugOutput CapturedOutput) {
	l.finished = append(l.finished, id.String())
}

func TestLoggerReceivesLifecycleEvents(t *testing.T) {
	logger := &capturingTestLogger{}
	filter := func(id TestID) bool { return id.String() != "skipped one" }
	Run(filter, logger, func(c *Context) {
		c.Run("ran one", func(c *Context) {
			c.Warnf("careful")
		})
		c.Run("skipped one", func(c *Context) {})
	})

	assert.Equal(t, []string{"ran one"}, logger.started)
	assert.Equal(t, []string{"ran one"}, logger.finished)
	assert.Equal(t, []string{"careful"}, logger.warnings)
	assert.Equal(t, []string{"skipped one"}, logger.skipped)
}
