// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/fee-referendum/cliparse"
	"github.com/danielhkuo/fee-referendum/models"
)

// RecordedPledge is one request received by the fake pledge service
type RecordedPledge struct {
	Body        models.PledgeRequest
	ContentType string
	RequestID   string
}

// PledgeService is an httptest stand-in for the remote pledge service.
// It answers POST /api/pledge with 201 unless told otherwise.
type PledgeService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedPledge
	status   int
	body     string
	gate     chan struct{}
}

// NewPledgeService starts a fake pledge service, closed on test cleanup
func NewPledgeService(t *testing.T) *PledgeService {
	t.Helper()

	s := &PledgeService{
		status: http.StatusCreated,
		body:   `{"message":"Pledge recorded"}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/pledge", s.handle)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

func (s *PledgeService) handle(w http.ResponseWriter, r *http.Request) {
	var body models.PledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid JSON"}`))
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedPledge{
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get("X-Request-ID"),
	})
	status, respBody, gate := s.status, s.body, s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(respBody))
}

// Respond sets the status and raw body of subsequent answers
func (s *PledgeService) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Block holds every subsequent request until the returned func is called
func (s *PledgeService) Block() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.gate = nil
			s.mu.Unlock()
			close(gate)
		})
	}
}

func (s *PledgeService) Requests() []RecordedPledge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedPledge, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *PledgeService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// WaitForCount polls until n requests have arrived or the timeout passes
func (s *PledgeService) WaitForCount(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Count() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d pledge requests, got %d", n, s.Count())
}

// GetTestConfig returns a standard test configuration pointing at backendURL
func GetTestConfig(backendURL string) cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		BackendURL:     backendURL,
		RequestTimeout: 2 * time.Second,
		AllowedOrigin:  "*",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
