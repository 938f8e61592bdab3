package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/smartshopping/api-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	passMarker = color.New(color.FgGreen).Sprint("✅")
	failMarker = color.New(color.FgRed).Sprint("❌")
	warnMarker = color.New(color.FgYellow).Sprint("⚠️")
)

// ConsoleTestLogger prints one line per scenario as it finishes, in the order
// the scenarios ran.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("   %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestWarning(id framework.TestID, message string) {
	fmt.Printf("   %s  %s\n", warnMarker, message)
}

func (c *ConsoleTestLogger) TestFinished(
	id framework.TestID,
	result framework.TestResult,
	debugOutput framework.CapturedOutput,
) {
	marker := passMarker
	if result.Failed() {
		marker = failMarker
	}
	fmt.Printf("%s %s: %s\n", marker, id, result.Details)
	if len(debugOutput) > 0 &&
		((result.Failed() && c.DebugOutputOnFailure) || (!result.Failed() && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("   SKIPPED: %s\n", id)
	} else {
		fmt.Printf("   SKIPPED: %s (%s)\n", id, reason)
	}
}
