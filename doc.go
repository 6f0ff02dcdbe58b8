// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fee referendum API server.

The server backs the campaign landing page: it answers fee calculator
queries and relays pledge forms to the pledge service. It stores nothing.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	BACKEND_URL=https://pledges.example.org go run .

Or with flags:

	go run . -p 3318 -b "https://pledges.example.org"

A .env file in the working directory is loaded first; variables already set
in the environment win.

# Configuration

Required settings:

  - BACKEND_URL (-b): Pledge service base URL (pledges go to {BACKEND_URL}/api/pledge)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - PLEDGE_TIMEOUT (-timeout): Pledge request timeout (default: 10s)
  - ALLOWED_ORIGIN (-origin): CORS origin (default: echo the caller)

# Architecture

  - simulator: Fee impact calculator (pure functions)
  - pledge: Pledge form state machine and pledge service client
  - handlers: HTTP request handlers (simulation, pledge relay)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - privacy: Log-safe client and email identifiers
  - cliparse: Configuration parsing
  - tui, cmd/feesim: Terminal version of the calculator and pledge form

See package documentation for each component.
*/
package main
