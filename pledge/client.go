// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PledgePath     = "/api/pledge"
	DefaultTimeout = 10 * time.Second

	// cap on how much of an error body we read looking for "detail"
	maxErrorBody = 64 << 10
)

// Sender transmits one pledge to the pledge service
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// RemoteError is a non-2xx answer from the pledge service
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pledge service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("pledge service returned %d", e.StatusCode)
}

// Client posts pledges to {baseURL}/api/pledge
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithTimeout bounds each Send, including reading the response
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.baseURL + PledgePath
}

// Send posts req. Any 2xx is success. A non-2xx answer yields *RemoteError,
// anything else (no response, timeout) a wrapped transport error.
func (c *Client) Send(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode pledge: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build pledge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("pledge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}

	return &RemoteError{
		StatusCode: resp.StatusCode,
		Detail:     readDetail(resp.Body),
	}
}

// readDetail pulls a string "detail" field out of an error body.
// Non-JSON bodies and structured details (validation error lists) give "".
func readDetail(r io.Reader) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&payload); err != nil {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
