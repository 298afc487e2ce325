// Package api is the HTTP boundary to the streaming service's web API:
// catalog queries, library getters, and rating writes. Requests carry the
// developer bearer token and the user's session token; failures are returned
// to the caller as-is with no automatic retry — retry policy belongs to the
// caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the service's web API root.
const DefaultBaseURL = "https://api.music.apple.com"

// userTokenHeader carries the user's session token alongside the developer
// bearer token.
const userTokenHeader = "Music-User-Token"

// Client is an authenticated web API client.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	developerToken string
	userToken      string
	storefront     string
	verbose        bool
	logFunc        func(format string, args ...interface{})
}

// New creates a client. An empty baseURL uses DefaultBaseURL; an empty
// storefront defaults to "us".
func New(baseURL, developerToken, userToken, storefront string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if storefront == "" {
		storefront = "us"
	}
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		baseURL:        strings.TrimRight(baseURL, "/"),
		developerToken: developerToken,
		userToken:      userToken,
		storefront:     storefront,
	}
}

// SetVerbose enables request logging through logFunc.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// do performs one request attempt and returns the status code and body.
// Transport-level failures are returned unwrapped of any status semantics.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	var bodyReader io.Reader
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullURL := c.baseURL + path
	if jsonBody != nil {
		c.log("[api] %s %s\n  body: %s", method, fullURL, string(jsonBody))
	} else {
		c.log("[api] %s %s", method, fullURL)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.developerToken)
	if c.userToken != "" {
		req.Header.Set(userTokenHeader, c.userToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log("[api] response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return resp.StatusCode, respBody, nil
}

// Get performs a GET request and decodes the response into result.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status >= 400 {
		return newError(status, body)
	}
	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// Put performs a PUT request and decodes the response into result.
func (c *Client) Put(ctx context.Context, path string, body, result interface{}) error {
	status, respBody, err := c.do(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	if status >= 400 {
		return newError(status, respBody)
	}
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// BuildURL appends query parameters to a path.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	u, _ := url.Parse(path)
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Error is a non-success API response.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API error %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("API error %d: %s", e.Status, e.Detail)
}

// IsServerError reports whether err is an API error response (as opposed to
// a transport failure).
func IsServerError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// errorEnvelope is the service's error response shape.
type errorEnvelope struct {
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		e.Detail = env.Errors[0].Title
		if env.Errors[0].Detail != "" {
			e.Detail = env.Errors[0].Detail
		}
	}
	return e
}
