// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, request_id and duration_ms on completion.

# CORS Middleware

Enable cross-origin requests from the landing page:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(mux),
	}

"*" echoes the caller's Origin so credentialed requests still work.
Preflight OPTIONS requests are answered with 204.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.PledgeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Only ever logged through privacy.HashIP.
*/
package middleware
