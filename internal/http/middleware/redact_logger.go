// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, a structured access logger that
// scrubs subscriber-identifying data before emitting logs. A CDR service
// handles phone numbers in nearly every payload, so the logger treats
// MSISDNs the way other services treat passwords:
//
//   - Default-safe: never logs request or response bodies
//   - Redacts MSISDN-like digit runs, UUIDs, and email addresses from query
//     strings and header values
//   - Fully masks sensitive headers (Authorization, Cookie, Set-Cookie, and
//     the x-api-key secret) plus any custom ones
//   - Attaches a request-scoped zerolog.Logger for downstream enrichment
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures additional scrub behavior for RedactingLogger.
//
// MaskHeaders specifies extra HTTP header names whose values are fully
// replaced with "[REDACTED]". Matching is case-insensitive and merged with
// the built-in sensitive headers.
type RedactOptions struct {
	MaskHeaders []string
}

// maxQueryLogLength caps the number of bytes of the raw query string logged.
const maxQueryLogLength = 2048

// RedactingLogger returns a Gin middleware that logs HTTP requests and
// responses with subscriber identifiers scrubbed.
//
// It records method, route path, remote IP, correlation ID, scrubbed query,
// status, latency, and response size, choosing the log level by outcome
// (info for 2xx/3xx, warn for 4xx, error for 5xx or collected Gin errors).
// The request-scoped logger is stored under the "logger" context key for
// LoggerFrom.
//
// NOTE: redact UUIDs before MSISDNs so the digit pattern cannot match the
// numeric segments of a UUID.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	uuidRE := regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE := regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// MSISDN-like runs: 11-15 digits, optionally prefixed with '+'.
	msisdnRE := regexp.MustCompile(`\+?\b\d{11,15}\b`)

	redact := func(s string) string {
		if s == "" {
			return s
		}
		out := uuidRE.ReplaceAllString(s, "[REDACTED:id]")
		out = emailRE.ReplaceAllString(out, "[REDACTED:email]")
		out = msisdnRE.ReplaceAllString(out, "[REDACTED:msisdn]")
		return out
	}

	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
		HeaderAPIKey:    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		path := c.FullPath()
		if path == "" {
			// Route not matched / 404.
			path = c.Request.URL.Path
		}

		headers := make(map[string]string, len(c.Request.Header))
		for name, vals := range c.Request.Header {
			key := strings.ToLower(name)
			if _, masked := maskHeaders[key]; masked {
				headers[key] = "[REDACTED]"
				continue
			}
			headers[key] = redact(strings.Join(vals, ","))
		}

		l := log.With().
			Str("request_id", asString(rid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("query", redact(truncate(c.Request.URL.RawQuery, maxQueryLogLength))).
			Interface("headers", headers).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set(loggerKey, &l)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		ev := l.With().
			Int("status", status).
			Dur("latency", latency).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", redact(c.Errors.String())).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// truncate returns s unchanged when within max bytes, otherwise it cuts s to
// max bytes and appends an ellipsis. A max <= 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
