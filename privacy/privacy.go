// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package privacy

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// NewSalt creates a random hex salt of the specified byte length.
// A salt that lives only as long as the process keeps hashes from being
// linked across restarts.
func NewSalt(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP creates a one-way hash of an IP address for log lines
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// 16 hex chars is plenty to tell clients apart in logs
	return hex.EncodeToString(sum[:8])
}

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "jamie@sfu.ca" -> "j***@sfu.ca"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(local)
	return string(first) + "***@" + domain
}
