package usershandler

import (
	"sync"
	"time"
)

// attemptLimiter is a best-effort in-process counter for password-change
// attempts. It is lost on restart and not shared between instances.
type attemptLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptWindow
	limit    int
	window   time.Duration
}

type attemptWindow struct {
	count int
	since time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		attempts: map[string]*attemptWindow{},
		limit:    limit,
		window:   window,
	}
}

// Allow registers an attempt for the key and reports whether it is within
// the limit for the current window.
func (l *attemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	w, exists := l.attempts[key]
	if !exists || now.Sub(w.since) > l.window {
		l.attempts[key] = &attemptWindow{count: 1, since: now}
		return true
	}
	w.count++
	return w.count <= l.limit
}

// Reset clears the counter, called after a successful change.
func (l *attemptLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}
