// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/testutil"
)

func newTestMux(t *testing.T) (*http.ServeMux, *testutil.PledgeService) {
	t.Helper()
	svc := testutil.NewPledgeService(t)
	return NewRouter(pledge.NewClient(svc.URL), "test-salt"), svc
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "fee-referendum API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestMux(t)

	testCases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/api/simulation", "", http.StatusOK},
		{"GET", "/api/simulation?fee=2", "", http.StatusOK},
		{"GET", "/api/simulation/steps", "", http.StatusOK},
		{"GET", "/api/interest-areas", "", http.StatusOK},
		{"POST", "/api/pledge", `{"name":"Sam","email":"sam@sfu.ca"}`, http.StatusCreated},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d. Body: %s", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	mux, svc := newTestMux(t)

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/nope", http.StatusNotFound},
		{"GET", "/api/pledge", http.StatusMethodNotAllowed},
		{"POST", "/pledge", http.StatusNotFound},
		{"POST", "/api/simulation", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
		})
	}

	if svc.Count() != 0 {
		t.Errorf("Expected no relayed pledges, got %d", svc.Count())
	}
}
