package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/smartshopping/api-contract-tests/client"
	"github.com/smartshopping/api-contract-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000/api"
const defaultReportPath = "backend_api_test_results.json"

// baseURLEnvVar is consulted (including via a .env file) when -url is not given.
const baseURLEnvVar = "API_BASE_URL"

type commandParams struct {
	baseURL    string
	reportPath string
	filters    framework.RegexFilters
	timeout    time.Duration
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", "", "base URL of the API under test")
	fs.StringVar(&c.reportPath, "output", defaultReportPath, "file path for the JSON report")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.timeout, "timeout", client.DefaultTimeout, "timeout for each HTTP request")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.baseURL == "" {
		c.baseURL = baseURLFromEnv()
	}
	return true
}

func baseURLFromEnv() string {
	_ = godotenv.Load()
	if url := os.Getenv(baseURLEnvVar); url != "" {
		return url
	}
	return defaultBaseURL
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that re-runs only the scenarios that failed.
func rerunCommand(programName string, params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(programName, "-url", params.baseURL)
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}
