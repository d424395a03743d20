// Package ratelimit implements the fixed-window request limiter applied in
// front of the API and admin routes. Windows are discrete: a key's counter
// resets to 1 whenever its window has elapsed, so bursts straddling a window
// boundary can transiently exceed the limit. That is acceptable for an admin
// surface.
package ratelimit

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

type bucket struct {
	count     int
	resetTime time.Time
}

type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	window time.Duration
	max    int

	now func() time.Time
}

func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Allow counts one request for the key. When the request is over the limit it
// returns false along with the time remaining until the window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetTime) {
		l.buckets[key] = &bucket{count: 1, resetTime: now.Add(l.window)}
		return true, 0
	}

	b.count++
	if b.count > l.max {
		return false, b.resetTime.Sub(now)
	}
	return true, 0
}

// Sweep drops buckets whose window has already elapsed. Without it the map
// grows unbounded under many distinct client IPs.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if !now.Before(b.resetTime) {
			delete(l.buckets, key)
		}
	}
}

// SweepLoop runs Sweep on a timer until stop is closed.
func (l *Limiter) SweepLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-stop:
			return
		}
	}
}

// Middleware rejects over-limit requests with 429 and a retry-after hint.
func (l *Limiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, retryAfter := l.Allow(ClientIP(c))
		if !ok {
			seconds := int(retryAfter.Seconds() + 0.5)
			if seconds < 1 {
				seconds = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			c.Set("X-RateLimit-Limit", strconv.Itoa(l.max))
			c.Set("X-RateLimit-Remaining", "0")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      "Too many requests, please try again later.",
				"retryAfter": seconds,
			})
		}
		return c.Next()
	}
}

// ClientIP resolves the best-effort client address: first X-Forwarded-For
// entry, then X-Real-IP, else "unknown".
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
