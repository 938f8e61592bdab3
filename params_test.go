package main

import (
	"testing"
	"time"

	"github.com/smartshopping/api-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{"prog"}))

	assert.Equal(t, defaultBaseURL, params.baseURL)
	assert.Equal(t, defaultReportPath, params.reportPath)
	assert.Equal(t, time.Second*10, params.timeout)
	assert.False(t, params.debug)
	assert.False(t, params.debugAll)
}

func TestReadFlags(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{
		"prog",
		"-url", "http://example.com/api",
		"-output", "out.json",
		"-run", "Product",
		"-skip", "Delete",
		"-timeout", "3s",
		"-debug",
	}))

	assert.Equal(t, "http://example.com/api", params.baseURL)
	assert.Equal(t, "out.json", params.reportPath)
	assert.Equal(t, time.Second*3, params.timeout)
	assert.True(t, params.debug)
	assert.True(t, params.filters.MustMatch.IsDefined())
	assert.True(t, params.filters.MustNotMatch.IsDefined())
}

func TestReadEnvFallback(t *testing.T) {
	t.Setenv(baseURLEnvVar, "http://from-env:9000/api")

	var params commandParams
	require.True(t, params.Read([]string{"prog"}))
	assert.Equal(t, "http://from-env:9000/api", params.baseURL)
}

func TestRerunCommandQuotesScenarioNames(t *testing.T) {
	params := commandParams{baseURL: "http://localhost:8000/api"}
	results := framework.Results{
		Failures: []framework.TestResult{
			{TestID: framework.TestID{Path: []string{"Delete Product (ID: abc12345...)"}}},
		},
	}

	cmd := rerunCommand("./api-contract-tests", params, results)

	assert.Contains(t, cmd, "-url http://localhost:8000/api")
	assert.Contains(t, cmd, "-run")
	// the pattern is regex-escaped and shell-quoted
	assert.Contains(t, cmd, `Delete Product`)
	assert.Contains(t, cmd, `'`)
}

func TestConsoleLoggerMarkers(t *testing.T) {
	// markers are fixed strings; just make sure pass and fail differ
	assert.NotEqual(t, passMarker, failMarker)
}
