package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := RateLimit(RateLimitOptions{RPS: 0.5, Burst: 2})(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1111").Code)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:2222").Code)

	rec := hit(h, "10.0.0.1:3333")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"msg":"too many requests"}`, rec.Body.String())

	// Otro cliente tiene su propio bucket.
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1111").Code)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	h := RateLimit(RateLimitOptions{})(okHandler())
	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	}
}

func TestRateLimit_CustomKey(t *testing.T) {
	h := RateLimit(RateLimitOptions{
		RPS:   1,
		Burst: 1,
		KeyFn: func(r *http.Request) string { return "everyone" },
	})(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.2:1").Code)
}

func TestLimiterStore_SweepsIdleEntries(t *testing.T) {
	s := newLimiterStore(1, 1, time.Minute)
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.get("a", t0)
	s.get("b", t0.Add(50*time.Second))
	require.Len(t, s.entries, 2)

	s.get("c", t0.Add(2*time.Minute))
	_, hasA := s.entries["a"]
	_, hasB := s.entries["b"]
	assert.False(t, hasA)
	assert.False(t, hasB)
	assert.Len(t, s.entries, 1)
}

func TestRemoteHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.168.1.10:5555"
	assert.Equal(t, "192.168.1.10", remoteHost(req))

	req.RemoteAddr = "192.168.1.10"
	assert.Equal(t, "192.168.1.10", remoteHost(req))

	req.RemoteAddr = ""
	assert.Equal(t, "unknown", remoteHost(req))
}
