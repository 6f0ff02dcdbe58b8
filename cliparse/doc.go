// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from the environment, .env files and
command-line flags.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

FromEnv reads the environment only, for callers with their own flags:

	cfg, err := cliparse.FromEnv()

# Config Fields

  - Port: Server listen port (default: 3318)
  - BackendURL: Pledge service base URL (required)
  - RequestTimeout: Pledge request timeout (default: 10s)
  - AllowedOrigin: CORS origin (default: "*")

# Environment Variables

	PORT           → -p
	BACKEND_URL    → -b
	PLEDGE_TIMEOUT → -timeout
	ALLOWED_ORIGIN → -origin

A .env file is loaded first but never overrides variables already set.
CLI flags take precedence over both.

# Validation

  - BACKEND_URL must be an absolute http(s) URL
  - PORT must be 1-65535
  - PLEDGE_TIMEOUT must be positive
*/
package cliparse
