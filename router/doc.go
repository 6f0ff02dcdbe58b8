// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the fee referendum API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(client, logSalt)

# Endpoints

Health:

	GET /health

Fee calculator:

	GET /api/simulation?fee=N  - Impact at one fee level
	GET /api/simulation/steps  - Overview of every level

Pledge form:

	GET  /api/interest-areas - Form choices
	POST /api/pledge         - Relay a pledge (same path as the pledge service)

Every API route is wrapped in middleware.WithLogging. CORS is applied
around the whole mux by main.
*/
package router
