// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BACKEND_URL", "https://pledge.example.org")
	t.Setenv("PLEDGE_TIMEOUT", "3s")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.BackendURL != "https://pledge.example.org" {
		t.Errorf("unexpected backend URL %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("expected default origin *, got %q", cfg.AllowedOrigin)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PLEDGE_TIMEOUT", "")
	t.Setenv("BACKEND_URL", "http://localhost:8001")

	os.Unsetenv("PORT")
	os.Unsetenv("PLEDGE_TIMEOUT")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %s", cfg.RequestTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BACKEND_URL", "https://env.example.org")

	cfg, err := ParseFlags([]string{"-p", "8080", "-b", "http://localhost:8001", "-timeout", "500ms"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.BackendURL != "http://localhost:8001" {
		t.Errorf("CLI should override env: got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", cfg.RequestTimeout)
	}
}

func TestParseFlags_MissingBackend(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	_, err := ParseFlags(nil)
	if err != ErrBackendURLRequired {
		t.Errorf("expected ErrBackendURLRequired, got %v", err)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("BACKEND_URL", "http://localhost:8001")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: 3318, BackendURL: "https://pledge.example.org", RequestTimeout: time.Second}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"relative url", func(c *Config) { c.BackendURL = "/api" }, true},
		{"ftp scheme", func(c *Config) { c.BackendURL = "ftp://example.org" }, true},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFromEnv_DotEnvFile(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	os.Unsetenv("BACKEND_URL")
	t.Cleanup(func() { os.Unsetenv("BACKEND_URL") })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("BACKEND_URL=https://dotenv.example.org\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BackendURL != "https://dotenv.example.org" {
		t.Errorf("expected value from env file, got %q", cfg.BackendURL)
	}
}

func TestFromEnv_MissingFileIgnored(t *testing.T) {
	if _, err := FromEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
