// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the API being tested.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results, warnings, and a details string for each test.
//
// 2. The results of a run can be aggregated into a summary report document and written
// to a file.
//
// The domain-specific code that knows what is being tested (the HTTP requests to make,
// the expected status codes, and the response fields to inspect) lives in the apitests
// package, layered on top of this one.
package framework
