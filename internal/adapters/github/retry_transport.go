package github

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/renato0307/trainmerge/internal/logging"
)

const (
	defaultRetryAttempts = 5
	defaultRetryDelay    = 1 * time.Second
	retryMaxDelay        = 1 * time.Minute
	retryMaxJitter       = 1 * time.Second
	maxRequestSize       = 1 * 1024 * 1024
)

// RetryTransport wraps an http.RoundTripper with exponential backoff on rate limits and
// server errors. Server errors are only retried for replayable requests. When attempts run out
// the last response is returned so callers see the status.
type RetryTransport struct {
	Attempts uint
	Base     http.RoundTripper
	Delay    time.Duration
}

// NewRetryTransport creates a RetryTransport with the default policy
func NewRetryTransport(base http.RoundTripper) *RetryTransport {
	return &RetryTransport{
		Attempts: defaultRetryAttempts,
		Base:     base,
		Delay:    defaultRetryDelay,
	}
}

// RoundTrip implements http.RoundTripper
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	attempts := t.Attempts
	if attempts == 0 {
		attempts = defaultRetryAttempts
	}

	logging.Logger.Debug("HTTP request starting", "method", req.Method, "url", req.URL.String())

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(io.LimitReader(req.Body, maxRequestSize))
		if err != nil {
			return nil, err
		}
		if closeErr := req.Body.Close(); closeErr != nil {
			logging.Logger.Debug("Failed to close request body", "error", closeErr)
		}
	}

	var resp *http.Response
	var exhausted bool
	err := retry.Do(
		func() error {
			if bodyBytes != nil {
				req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}

			exhausted = false
			var err error
			start := time.Now()
			resp, err = base.RoundTrip(req)
			elapsed := time.Since(start)
			if err != nil {
				logging.Logger.Warn("HTTP request failed", "url", req.URL.String(), "error", err, "elapsed", elapsed)
				return err
			}

			logging.Logger.Debug("HTTP response received",
				"status", resp.StatusCode,
				"url", req.URL.String(),
				"elapsed", elapsed)

			reason := retryReason(req, resp)
			if reason == "" {
				return nil
			}

			// Buffer the body so the final response stays readable
			respBody, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				respBody = nil
			}
			_ = resp.Body.Close()
			resp.Body = io.NopCloser(bytes.NewReader(respBody))

			logging.Logger.Info("HTTP request will be retried",
				"status", resp.StatusCode,
				"url", req.URL.String(),
				"reason", reason)
			exhausted = true
			return &retryableError{StatusCode: resp.StatusCode}
		},
		retry.Context(req.Context()),
		retry.Attempts(attempts),
		retry.Delay(t.Delay),
		retry.MaxDelay(retryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxJitter(retryMaxJitter),
		retry.RetryIf(func(err error) bool {
			var retryErr *retryableError
			return errors.As(err, &retryErr)
		}),
	)
	if err != nil {
		if exhausted && resp != nil && req.Context().Err() == nil {
			return resp, nil
		}
		return nil, err
	}

	return resp, nil
}

func retryReason(req *http.Request, resp *http.Response) string {
	if resp.StatusCode == http.StatusTooManyRequests {
		return "retryable status code"
	}
	// GitHub answers 403 for exhausted rate limits
	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-Ratelimit-Remaining") == "0" {
		return "rate limit exceeded"
	}
	if resp.StatusCode >= 500 && resp.StatusCode < 600 && replayable(req) {
		return "retryable status code"
	}
	return ""
}

// replayable reports whether sending req twice has no additional effect.
// GraphQL requests are POSTs but only ever carry queries.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	case http.MethodPost:
		return strings.HasSuffix(req.URL.Path, "/graphql")
	}
	return false
}

type retryableError struct {
	StatusCode int
}

func (e *retryableError) Error() string {
	return http.StatusText(e.StatusCode)
}
