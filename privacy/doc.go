// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package privacy keeps supporter details out of log lines.

	salt, _ := privacy.NewSalt(16)
	slog.Info("pledge relayed",
		"client", privacy.HashIP(ip, salt),
		"email", privacy.MaskEmail(req.Email),
	)

HashIP is an HMAC-SHA256 of the address truncated to 8 bytes (16 hex chars).
The relay generates its salt at startup and never persists it.
*/
package privacy
