// Package siyuan implements the HTTP client for the SiYuan kernel API.
// Every operation is a single POST against the configured base URL; the
// response is normalized into a parsed JSON value or a raw-body envelope.
package siyuan

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "http://127.0.0.1:6806"
	DefaultTimeoutMS = 15000
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient builds a client for the kernel at baseURL. A trailing slash on
// baseURL is stripped so endpoint paths can be joined by concatenation.
// When token is empty no Authorization header is sent.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeoutMS * time.Millisecond
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      strings.TrimSpace(token),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// PostJSON sends body as an application/json request and returns the
// parsed response. A response body that is not valid JSON is wrapped as
// {"status": <code>, "body": <raw text>} instead of failing: a transport
// success is never surfaced as a dispatch error.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body any) (any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fromClientError(err, "encode request body")
	}
	status, _, data, err := c.post(ctx, endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	return looseJSON(status, data), nil
}

// PostMultipart sends form as a multipart/form-data request. Response
// handling is identical to PostJSON.
func (c *Client) PostMultipart(ctx context.Context, endpoint string, form *Form) (any, error) {
	contentType, payload, err := form.Encode()
	if err != nil {
		return nil, fromClientError(err, "encode multipart body")
	}
	status, _, data, err := c.post(ctx, endpoint, contentType, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	return looseJSON(status, data), nil
}

// PostJSONFile sends a JSON request whose response is a binary download.
// Success responses are base64-wrapped unconditionally, even when the
// bytes happen to be textual; failure responses are structured kernel
// errors and are returned as parsed JSON when possible, degrading to the
// same base64 wrapper otherwise.
func (c *Client) PostJSONFile(ctx context.Context, endpoint string, body any) (any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fromClientError(err, "encode request body")
	}
	status, contentType, data, err := c.post(ctx, endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return fileEnvelope(status, contentType, data), nil
	}
	var parsed any
	if jsonErr := json.Unmarshal(data, &parsed); jsonErr == nil {
		return parsed, nil
	}
	return fileEnvelope(status, contentType, data), nil
}

// post performs the single HTTP interaction shared by all operations.
// Transport failures (connect, timeout, TLS) come back as internal errors
// and are never retried; retry policy belongs to the caller of the gateway.
func (c *Client) post(ctx context.Context, endpoint, contentType string, body io.Reader) (status int, respContentType string, data []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, body)
	if err != nil {
		return 0, "", nil, fromClientError(err, "build request for %s", endpoint)
	}
	req.Header.Set("Content-Type", contentType)
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, "", nil, fromClientError(err, "post %s", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, fromClientError(err, "read response from %s", endpoint)
	}
	return resp.StatusCode, resp.Header.Get("Content-Type"), data, nil
}

// looseJSON parses data as JSON, falling back to a status/body envelope
// for non-JSON responses.
func looseJSON(status int, data []byte) any {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err == nil {
		return parsed
	}
	return map[string]any{
		"status": status,
		"body":   string(data),
	}
}

func fileEnvelope(status int, contentType string, data []byte) map[string]any {
	envelope := map[string]any{
		"status":      status,
		"body_base64": base64.StdEncoding.EncodeToString(data),
	}
	if contentType != "" {
		envelope["content_type"] = contentType
	} else {
		envelope["content_type"] = nil
	}
	return envelope
}
