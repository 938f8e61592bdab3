package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/smartshopping/api-contract-tests/apitests"
	"github.com/smartshopping/api-contract-tests/client"
	"github.com/smartshopping/api-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	debugLogger := framework.NullLogger()
	if params.debugAll {
		debugLogger = newDebugLogger()
	}

	apiClient := client.NewAPIClient(params.baseURL, params.timeout, debugLogger)

	fmt.Println("🚀 Starting Smart Shopping API Tests")
	fmt.Printf("Target: %s\n", apiClient.BaseURL())
	fmt.Println(strings.Repeat("=", 50))
	framework.PrintFilterDescription(params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(apiClient, params.filters.AsFilter, testLogger)

	fmt.Println()
	printSummary(results)

	if err := framework.WriteReportFile(params.reportPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write report to %s: %s\n", params.reportPath, err)
		os.Exit(1)
	}

	if !results.OK() {
		fmt.Println("\nTo re-run only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results))
		os.Exit(1)
	}
}

func newDebugLogger() framework.Logger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func printSummary(results framework.Results) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("📊 Test Summary: %d/%d tests passed\n", results.PassedCount(), len(results.Tests))
	if results.OK() {
		color.Green("🎉 All tests passed!")
	} else {
		color.Yellow("⚠️  Some tests failed. Check details above.")
	}
}
