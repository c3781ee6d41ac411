package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter_IsAllowed(t *testing.T) {
	rl := NewLoginRateLimiter(3, time.Minute)
	ip := "192.168.1.1"

	for i := 0; i < 3; i++ {
		assert.True(t, rl.IsAllowed(ip), "attempt %d should be allowed", i+1)
		rl.RecordAttempt(ip)
	}

	assert.False(t, rl.IsAllowed(ip), "4th attempt should be blocked")
	assert.True(t, rl.IsAllowed("192.168.1.2"), "different client should be allowed")
}

func TestLoginRateLimiter_WindowExpiry(t *testing.T) {
	now := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	rl := NewLoginRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.RecordAttempt("a")
	assert.False(t, rl.IsAllowed("a"))
	assert.Equal(t, time.Minute, rl.TimeUntilAllowed("a"))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 30*time.Second, rl.TimeUntilAllowed("a"))

	now = now.Add(31 * time.Second)
	assert.True(t, rl.IsAllowed("a"))
	assert.Equal(t, time.Duration(0), rl.TimeUntilAllowed("a"))
}

func TestLoginRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	rl := NewLoginRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		allowed, wait := rl.Allow("a")
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
		assert.Zero(t, wait)
	}

	now = now.Add(20 * time.Second)
	allowed, wait := rl.Allow("a")
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, wait)

	// A refused attempt is not counted
	now = now.Add(41 * time.Second)
	allowed, _ = rl.Allow("a")
	assert.True(t, allowed)
}

func TestLoginRateLimit_ConcurrentAttempts(t *testing.T) {
	const maxAttempts = 5
	rl := NewLoginRateLimiter(maxAttempts, time.Minute)
	handler := LoginRateLimit(rl)(okHandler("success"))

	var passed, refused int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.7:4000"
			rr := httptest.NewRecorder()
			<-start
			handler.ServeHTTP(rr, req)
			switch rr.Code {
			case http.StatusOK:
				atomic.AddInt64(&passed, 1)
			case http.StatusTooManyRequests:
				atomic.AddInt64(&refused, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(maxAttempts), passed)
	assert.Equal(t, int64(64-maxAttempts), refused)
}

func TestLoginRateLimit(t *testing.T) {
	rl := NewLoginRateLimiter(2, time.Minute)
	handler := LoginRateLimit(rl)(okHandler("success"))

	post := func(htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, post(false).Code)
	assert.Equal(t, http.StatusOK, post(false).Code)

	blocked := post(false)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	htmx := post(true)
	assert.Equal(t, http.StatusTooManyRequests, htmx.Code)
	assert.Contains(t, htmx.Body.String(), "Too many login attempts")

	// GET requests are never limited
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4321"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
