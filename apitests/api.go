package apitests

import (
	"fmt"
	"net/http"

	"github.com/smartshopping/api-contract-tests/client"
	"github.com/smartshopping/api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// No more than this much raw response text is quoted in a failure's details.
const maxQuotedResponseBytes = 100

// environment is the state shared by every scenario in one run of the suite.
type environment struct {
	client           *client.APIClient
	createdProductID string
}

// T represents a test in the API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment
// that is outside of the Go test runner, and with some extra features such as debug
// logging that are convenient for our use case. Those features are provided by our
// lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T
// as if it were a *testing.T. Most scenarios instead go through RunRequest, which
// performs one HTTP call and records the outcome in the standard details format.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods
// in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a named scenario and reports whether it passed. The scenario shares the
// suite-wide environment, so state such as a captured product ID carries across scenarios.
func (t *T) Run(name string, action func(*T)) bool {
	return t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger
// at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Warnf records a response-shape warning. Warnings are reported but never fail the test.
func (t *T) Warnf(format string, args ...interface{}) {
	t.context.Warnf(format, args...)
}

// RequestOpts are the optional parts of a scenario's request.
type RequestOpts struct {
	Body    interface{} // marshalled to JSON when non-nil
	Headers http.Header // overrides the default Content-Type when set
}

// RunRequest performs one HTTP call for the current scenario and records its outcome.
//
// The scenario passes iff the response status equals expectedStatus. Transport-level
// failures (connection errors, timeouts) are converted into a failed result rather than
// propagated, so the suite always continues to the next scenario. The returned value is
// the decoded response body on success, or ldvalue.Null() otherwise.
func (t *T) RunRequest(method, endpoint string, expectedStatus int, opts RequestOpts) (bool, ldvalue.Value) {
	t.Debug("%s %s (expecting %d)", method, endpoint, expectedStatus)

	resp, err := t.env.client.DoRequest(method, endpoint, opts.Body, opts.Headers)
	if err != nil {
		t.context.Detailf("Exception: %s", err)
		t.Errorf("Exception: %s", err)
		return false, ldvalue.Null()
	}

	if resp.StatusCode != expectedStatus {
		details := fmt.Sprintf("Expected %d, got %d", expectedStatus, resp.StatusCode)
		if detail := resp.JSON.GetByKey("detail"); !detail.IsNull() {
			details += fmt.Sprintf(", Error: %s", valueText(detail))
		} else {
			raw := string(resp.Body)
			if len(raw) > maxQuotedResponseBytes {
				raw = raw[:maxQuotedResponseBytes]
			}
			details += fmt.Sprintf(", Response: %s", raw)
		}
		t.context.Detailf("%s", details)
		t.Errorf("%s", details)
		return false, ldvalue.Null()
	}

	details := fmt.Sprintf("Status: %d", resp.StatusCode)
	switch resp.JSON.Type() {
	case ldvalue.ArrayType:
		details += fmt.Sprintf(", Items: %d", resp.JSON.Count())
	case ldvalue.ObjectType:
		if message := resp.JSON.GetByKey("message"); !message.IsNull() {
			details += fmt.Sprintf(", Message: %s", valueText(message))
		}
	}
	t.context.Detailf("%s", details)
	return true, resp.JSON
}

// warnOnMissingFields checks that an object from a successful response carries all of
// the required field names, warning (not failing) on any omissions.
func (t *T) warnOnMissingFields(description string, item ldvalue.Value, requiredFields []string) {
	present := make(map[string]bool)
	for _, key := range item.Keys() {
		present[key] = true
	}
	var missing []string
	for _, field := range requiredFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		t.Warnf("Missing fields in %s: %v", description, missing)
	} else {
		t.Debug("%s structure is correct", description)
	}
}

func valueText(v ldvalue.Value) string {
	if v.IsString() {
		return v.StringValue()
	}
	return v.JSONString()
}
