package apilayer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
)

// fakeAPILayer responde como apilayer: reemplaza "darn" por "****".
type fakeAPILayer struct {
	calls    atomic.Int32
	failures int32
	status   int
}

func (f *fakeAPILayer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := f.calls.Add(1)
	if r.Header.Get("apikey") != "secret" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid authentication credentials"}`))
		return
	}
	if n <= f.failures {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"message":"provider unavailable"}`))
		return
	}

	body, _ := io.ReadAll(r.Body)
	censored := strings.ReplaceAll(string(body), "darn", "****")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"content":          string(body),
		"bad_words_total":  strings.Count(string(body), "darn"),
		"censored_content": censored,
	})
}

func newTestClient(t *testing.T, url, key string, log logger.Logger, m *metrics.Metrics) *Client {
	t.Helper()
	return NewClient(Config{
		URL:         url,
		APIKey:      key,
		Timeout:     time.Second,
		MaxAttempts: 3,
		BackoffMin:  time.Millisecond,
		BackoffMax:  2 * time.Millisecond,
	}, log, m)
}

func TestCensor_ReturnsCensoredContent(t *testing.T) {
	fake := &fakeAPILayer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	m := metrics.New()
	c := newTestClient(t, srv.URL, "secret", nil, m)

	got, err := c.Censor(context.Background(), "darn it")
	require.NoError(t, err)
	assert.Equal(t, "**** it", got)

	got, err = c.CensorWithBackoff(context.Background(), "Frodo")
	require.NoError(t, err)
	assert.Equal(t, "Frodo", got)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModerationCalls.WithLabelValues(tierPlain, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModerationCalls.WithLabelValues(tierBackoff, "ok")))
}

func TestCensorWithBackoff_RetriesTransientFailures(t *testing.T) {
	fake := &fakeAPILayer{failures: 2, status: http.StatusServiceUnavailable}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	m := metrics.New()
	c := newTestClient(t, srv.URL, "secret", nil, m)

	got, err := c.CensorWithBackoff(context.Background(), "darn")
	require.NoError(t, err)
	assert.Equal(t, "****", got)
	assert.Equal(t, int32(3), fake.calls.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ModerationRetries))
}

func TestCensorWithBackoff_GivesUpAfterMaxAttempts(t *testing.T) {
	fake := &fakeAPILayer{failures: 10, status: http.StatusBadGateway}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "secret", nil, nil).CensorWithBackoff(context.Background(), "darn")
	require.Error(t, err)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
	assert.Equal(t, int32(3), fake.calls.Load())
}

func TestCensor_PlainTierDoesNotRetry(t *testing.T) {
	fake := &fakeAPILayer{failures: 1, status: http.StatusServiceUnavailable}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "secret", nil, nil).Censor(context.Background(), "darn")
	require.Error(t, err)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestCensor_ClientErrorIsNotRetriedAndIsLogged(t *testing.T) {
	fake := &fakeAPILayer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})
	c := newTestClient(t, srv.URL, "wrong", log, nil)

	_, err := c.CensorWithBackoff(context.Background(), "darn")
	require.Error(t, err)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
	assert.Equal(t, int32(1), fake.calls.Load())

	out := buf.String()
	assert.Contains(t, out, `"class":"client"`)
	assert.Contains(t, out, "Invalid authentication credentials")
	assert.Contains(t, out, `"status":401`)
}

func TestCensor_UnparseableProviderErrorStillFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "secret", nil, nil).Censor(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
}

func TestCensor_BadJSONOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, "secret", nil, nil).Censor(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestCensor_MissingCensoredContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	out, err := newTestClient(t, srv.URL, "secret", nil, nil).Censor(context.Background(), "x")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, ErrBadResponse)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
}

func TestCensor_NotConfigured(t *testing.T) {
	c := NewClient(Config{URL: "http://localhost"}, nil, nil)
	assert.False(t, c.IsConfigured())

	_, err := c.Censor(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
}

func TestCensor_RateLimiterHonoursContext(t *testing.T) {
	fake := &fakeAPILayer{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, APIKey: "secret", RatePerSecond: 0.001, Burst: 1}, nil, nil)

	_, err := c.Censor(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = c.Censor(ctx, "second")
	require.Error(t, err)
	assert.Equal(t, apperr.KindModeration, apperr.KindOf(err))
	assert.Equal(t, int32(1), fake.calls.Load())
}
