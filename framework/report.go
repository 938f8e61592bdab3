package framework

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"
)

// Report is the JSON document describing the outcome of a full test run.
type Report struct {
	Summary         ReportSummary  `json:"summary"`
	DetailedResults []ReportResult `json:"detailed_results"`
}

type ReportSummary struct {
	TotalTests  int    `json:"total_tests"`
	PassedTests int    `json:"passed_tests"`
	SuccessRate string `json:"success_rate"`
	Timestamp   string `json:"timestamp"`
}

type ReportResult struct {
	Test      string   `json:"test"`
	Status    string   `json:"status"`
	Details   string   `json:"details"`
	Warnings  []string `json:"warnings,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// MakeReport converts accumulated results into the report document. Results
// appear in execution order; the summary timestamp is the time the report was
// generated.
func MakeReport(results Results, generated time.Time) Report {
	report := Report{DetailedResults: []ReportResult{}}
	for _, r := range results.Tests {
		status := "PASS"
		if r.Failed() {
			status = "FAIL"
		}
		report.DetailedResults = append(report.DetailedResults, ReportResult{
			Test:      r.TestID.String(),
			Status:    status,
			Details:   r.Details,
			Warnings:  r.Warnings,
			Timestamp: r.Timestamp.Format(time.RFC3339),
		})
	}
	total := len(results.Tests)
	passed := results.PassedCount()
	rate := "0%"
	if total > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(passed)/float64(total)*100)
	}
	report.Summary = ReportSummary{
		TotalTests:  total,
		PassedTests: passed,
		SuccessRate: rate,
		Timestamp:   generated.Format(time.RFC3339),
	}
	return report
}

// WriteReportFile writes the report document for the given results to a file,
// replacing any previous contents.
func WriteReportFile(path string, results Results) error {
	data, err := json.MarshalIndent(MakeReport(results, time.Now()), "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
