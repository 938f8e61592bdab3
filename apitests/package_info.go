// Package apitests contains the inventory API contract tests themselves and their
// supporting API.
//
// Test harness infrastructure that is not specific to this API, such as result
// accumulation and report output, is in the lower-level framework package; the
// HTTP plumbing is in the client package.
package apitests
