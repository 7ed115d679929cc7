// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// attempts is the sliding window of one client on one form.
type attempts struct {
	mu   sync.Mutex
	hits []time.Time
}

// prune drops hits at or before cutoff and reports how many remain.
func (a *attempts) prune(cutoff time.Time) int {
	kept := a.hits[:0]
	for _, ts := range a.hits {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	a.hits = kept
	return len(kept)
}

// RateLimiter throttles the login and register submits. Each client IP
// gets its own budget per path, so failed logins do not block registering.
type RateLimiter struct {
	mu      sync.RWMutex
	clients map[string]*attempts
	limit   int
	window  time.Duration
	denied  http.Handler
	now     func() time.Time
	stopCh  chan struct{}
	stopped sync.Once
}

// NewRateLimiter allows limit submits per window and starts a goroutine
// that forgets idle clients. Call Stop when done.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*attempts),
		limit:   limit,
		window:  window,
		denied:  http.HandlerFunc(tooManyRequests),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopped.Do(func() { close(rl.stopCh) })
}

// OnLimit sets the handler for rejected requests, e.g. one that re-renders
// the form with a localized message. It must be called before serving.
func (rl *RateLimiter) OnLimit(h http.Handler) {
	rl.denied = h
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}

// entry returns the window for key, creating it on first use.
func (rl *RateLimiter) entry(key string) *attempts {
	rl.mu.RLock()
	a, ok := rl.clients[key]
	rl.mu.RUnlock()
	if ok {
		return a
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if a, ok = rl.clients[key]; !ok {
		a = &attempts{}
		rl.clients[key] = a
	}
	return a
}

// allow records a hit for key unless its window is already full.
func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	a := rl.entry(key)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prune(now.Add(-rl.window)) >= rl.limit {
		return false
	}
	a.hits = append(a.hits, now)
	return true
}

// cleanup forgets clients whose window is empty.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, a := range rl.clients {
		a.mu.Lock()
		idle := a.prune(cutoff) == 0
		a.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

// Middleware limits form submits. GET and HEAD, which only render the
// form, always pass.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)
		if !rl.allow(ip + " " + r.URL.Path) {
			slog.Warn("rate limit exceeded", "path", r.URL.Path, "ip", ip)
			rl.denied.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the original client address: the leftmost
// X-Forwarded-For entry, then X-Real-IP, then RemoteAddr without its port.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
