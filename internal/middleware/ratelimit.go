package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// LoginRateLimiter limits login attempts per client address
type LoginRateLimiter struct {
	attempts    map[string][]time.Time
	mutex       sync.Mutex
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewLoginRateLimiter allows maxAttempts logins per window per client
func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// IsAllowed checks if a login attempt from the given client is allowed
func (rl *LoginRateLimiter) IsAllowed(client string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := rl.prune(client)
	return len(valid) < rl.maxAttempts
}

// RecordAttempt records a login attempt for the given client
func (rl *LoginRateLimiter) RecordAttempt(client string) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	rl.attempts[client] = append(rl.prune(client), rl.now())
}

// Allow records an attempt for client when one is left in the window. When
// none is left it returns false and how long the client has to wait. The
// check and the record happen under one lock.
func (rl *LoginRateLimiter) Allow(client string) (bool, time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := rl.prune(client)
	if len(valid) >= rl.maxAttempts {
		return false, valid[0].Add(rl.window).Sub(rl.now())
	}
	rl.attempts[client] = append(valid, rl.now())
	return true, 0
}

// TimeUntilAllowed returns how long the client has to wait for its next attempt
func (rl *LoginRateLimiter) TimeUntilAllowed(client string) time.Duration {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	valid := rl.prune(client)
	if len(valid) < rl.maxAttempts {
		return 0
	}
	return valid[0].Add(rl.window).Sub(rl.now())
}

// prune drops attempts older than the window. Callers hold the lock.
func (rl *LoginRateLimiter) prune(client string) []time.Time {
	cutoff := rl.now().Add(-rl.window)

	var valid []time.Time
	for _, attempt := range rl.attempts[client] {
		if attempt.After(cutoff) {
			valid = append(valid, attempt)
		}
	}

	if len(valid) == 0 {
		delete(rl.attempts, client)
	} else {
		rl.attempts[client] = valid
	}
	return valid
}

// Run removes stale entries every interval until ctx is done
func (rl *LoginRateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mutex.Lock()
			for client := range rl.attempts {
				rl.prune(client)
			}
			rl.mutex.Unlock()
		}
	}
}

// LoginRateLimit applies rateLimiter to POST requests
func LoginRateLimit(rateLimiter *LoginRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			allowed, wait := rateLimiter.Allow(clientIP(r))
			if !allowed {
				wait = wait.Round(time.Second)
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(wait.Seconds())))

				if IsHTMXRequest(r) {
					w.WriteHeader(http.StatusTooManyRequests)
					w.Write([]byte(`<div class="alert alert-error">Too many login attempts. Please try again in ` + wait.String() + `.</div>`))
				} else {
					http.Error(w, "Too many login attempts. Please try again later.", http.StatusTooManyRequests)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr, which chi's RealIP middleware
// has already rewritten from X-Forwarded-For / X-Real-IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
