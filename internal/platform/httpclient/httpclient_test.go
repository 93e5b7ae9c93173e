package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusSequence(t *testing.T, calls *atomic.Int32, statuses ...int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		body, _ := io.ReadAll(r.Body)
		st := statuses[len(statuses)-1]
		if n <= len(statuses) {
			st = statuses[n-1]
		}
		w.WriteHeader(st)
		_, _ = w.Write(body)
	}))
}

func fastRetry() RetryConfig {
	return RetryConfig{
		Timeout:     time.Second,
		MaxAttempts: 3,
		BackoffMin:  time.Millisecond,
		BackoffMax:  2 * time.Millisecond,
	}
}

func TestRetrying_RetriesServerErrorsAndReplaysBody(t *testing.T) {
	var calls atomic.Int32
	srv := statusSequence(t, &calls, http.StatusServiceUnavailable, http.StatusOK)
	defer srv.Close()

	var retries []int
	cfg := fastRetry()
	cfg.OnRetry = func(_ *http.Request, attempt int) { retries = append(retries, attempt) }

	raw, err := NewRetrying(cfg).Do(context.Background(), http.MethodPost, srv.URL, nil, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []int{1}, retries)
}

func TestRetrying_BoundedAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := statusSequence(t, &calls, http.StatusInternalServerError)
	defer srv.Close()

	_, err := NewRetrying(fastRetry()).Do(context.Background(), http.MethodPost, srv.URL, nil, []byte("x"))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.True(t, httpErr.IsServerError())
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetrying_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := statusSequence(t, &calls, http.StatusBadRequest)
	defer srv.Close()

	_, err := NewRetrying(fastRetry()).Do(context.Background(), http.MethodPost, srv.URL, nil, []byte("x"))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.True(t, httpErr.IsClientError())
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetrying_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := statusSequence(t, &calls, http.StatusTooManyRequests, http.StatusOK)
	defer srv.Close()

	_, err := NewRetrying(fastRetry()).Do(context.Background(), http.MethodPost, srv.URL, nil, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPlain_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := statusSequence(t, &calls, http.StatusServiceUnavailable, http.StatusOK)
	defer srv.Close()

	_, err := New(time.Second).Do(context.Background(), http.MethodPost, srv.URL, nil, []byte("x"))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodPost, "v1/echo", nil, map[string]string{"a": "b"}, nil)
	require.Error(t, err)

	c := New(time.Second)
	c.BaseURL = srv.URL

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "v1/echo", nil, map[string]string{"a": "b"}, &out))
	assert.True(t, out.OK)
}
