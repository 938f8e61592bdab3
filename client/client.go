package client

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/smartshopping/api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultTimeout is how long each request may take, including connection
// setup and reading the response body, unless overridden.
const DefaultTimeout = time.Second * 10

// APIClient sends requests to the inventory service under test. It does not
// interpret responses beyond decoding the body; deciding whether a response
// is correct is up to the caller.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// Response describes what came back from one request.
type Response struct {
	StatusCode int
	Body       []byte
	JSON       ldvalue.Value // ldvalue.Null() if the body was not valid JSON
}

func NewAPIClient(baseURL string, timeout time.Duration, logger framework.Logger) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// DoRequest performs a single HTTP request against the service. The endpoint
// is a path relative to the base URL. A non-nil body is marshalled to JSON.
// Every request carries Content-Type: application/json unless the headers
// parameter overrides it. A returned error always means a transport-level
// failure; any HTTP status at all produces a Response and a nil error.
func (c *APIClient) DoRequest(method, endpoint string, body interface{}, headers http.Header) (Response, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")

	var requestBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{}, err
		}
		requestBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	for name, values := range headers {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	c.logger.Printf("%s %s", method, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}

	var responseBody []byte
	if resp.Body != nil {
		responseBody, err = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return Response{}, err
		}
	}
	c.logger.Printf("%s %s -> %d", method, url, resp.StatusCode)

	return Response{
		StatusCode: resp.StatusCode,
		Body:       responseBody,
		JSON:       ldvalue.Parse(responseBody),
	}, nil
}
