package github

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFastRetryTransport() *RetryTransport {
	return &RetryTransport{Attempts: 3, Base: http.DefaultTransport, Delay: time.Millisecond}
}

func TestRetryTransport_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := &http.Client{Transport: newFastRetryTransport()}
	resp, err := client.Post(server.URL+"/graphql", "application/json", strings.NewReader("payload"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryTransport_ReturnsLastResponseWhenExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer server.Close()

	client := &http.Client{Transport: newFastRetryTransport()}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "slow down", string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryTransport_RateLimitedForbidden(t *testing.T) {
	tests := []struct {
		name          string
		remaining     string
		expectedCalls int32
	}{
		{"rate limited", "0", 3},
		{"plain forbidden", "42", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.Header().Set("X-Ratelimit-Remaining", tt.remaining)
				w.WriteHeader(http.StatusForbidden)
			}))
			defer server.Close()

			client := &http.Client{Transport: newFastRetryTransport()}
			resp, err := client.Get(server.URL)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestRetryTransport_ServerErrorsOnlyRetriedWhenReplayable(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		expectedCalls int32
	}{
		{"get", http.MethodGet, "/repos/acme/widgets/branches", http.StatusBadGateway, 3},
		{"graphql query", http.MethodPost, "/graphql", http.StatusBadGateway, 3},
		{"merge", http.MethodPut, "/repos/acme/widgets/pulls/7/merge", http.StatusBadGateway, 1},
		{"comment", http.MethodPost, "/repos/acme/widgets/issues/7/comments", http.StatusServiceUnavailable, 1},
		{"merge rate limited", http.MethodPut, "/repos/acme/widgets/pulls/7/merge", http.StatusTooManyRequests, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, tt.path, r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, strings.NewReader("{}"))
			require.NoError(t, err)
			client := &http.Client{Transport: newFastRetryTransport()}
			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}
