package config

import (
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
		"MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY", "SWAGGER_ENABLED",
		"API_BASE_PATH", "DB_PATH", "API_KEY", "RATE_RPS", "RATE_BURST",
		"CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "HSTS_MAX_AGE", "INGEST_IDEMPOTENCY_TTL",
		"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBPath != "cdr.db" {
		t.Fatalf("DBPath = %q, want cdr.db", cfg.DBPath)
	}
	if cfg.IngestIdempotencyTTL != 24*time.Hour {
		t.Fatalf("IngestIdempotencyTTL = %v, want 24h", cfg.IngestIdempotencyTTL)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate defaults: rps=%v burst=%d", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.APIBasePath != "/" {
		t.Fatalf("APIBasePath = %q, want /", cfg.APIBasePath)
	}
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error without API_KEY")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "DEBUG")
	t.Setenv("LOG_LEVEL", "warning") // normalized to warn
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("DB_PATH", "/var/data/cdr.db")
	t.Setenv("INGEST_IDEMPOTENCY_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("API_BASE_PATH", "api/v1/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.GinMode != "debug" || cfg.LogLevel != "warn" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.IngestIdempotencyTTL != 30*time.Minute {
		t.Fatalf("IngestIdempotencyTTL = %v", cfg.IngestIdempotencyTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("CORS origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q, want /api/v1", cfg.APIBasePath)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		k, v string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero ttl", "INGEST_IDEMPOTENCY_TTL", "0s"},
		{"negative rps", "RATE_RPS", "-1"},
		{"zero burst", "RATE_BURST", "0"},
		{"bad sampler", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("API_KEY", "s3cret")
			t.Setenv(tc.k, tc.v)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.k, tc.v)
			}
		})
	}
}

func TestLoad_InvalidGinModeFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("GIN_MODE", "turbo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q, want release", cfg.GinMode)
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	clearEnv(t)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without API_KEY")
		}
	}()
	_ = MustLoad()
}

func TestHelpers(t *testing.T) {
	if got := normalizeBasePath(""); got != "/" {
		t.Fatalf("normalizeBasePath(\"\") = %q", got)
	}
	if got := normalizeBasePath("v1/"); got != "/v1" {
		t.Fatalf("normalizeBasePath(v1/) = %q", got)
	}
	if got := splitCSV(" a ,, b "); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("splitCSV = %v", got)
	}
	if splitCSV("") != nil {
		t.Fatal("splitCSV(\"\") must be nil")
	}

	t.Setenv("BOOL_TEST", "yes")
	if !getbool("BOOL_TEST", false) {
		t.Fatal("getbool yes -> true")
	}
	t.Setenv("BOOL_TEST", "off")
	if getbool("BOOL_TEST", true) {
		t.Fatal("getbool off -> false")
	}
	t.Setenv("BOOL_TEST", "maybe")
	if !getbool("BOOL_TEST", true) {
		t.Fatal("getbool junk -> default")
	}
}
