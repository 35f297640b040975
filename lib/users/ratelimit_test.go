package usershandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAttemptLimiter(t *testing.T) {
	t.Run(`limit blocks after the allowed attempts`, func(t *testing.T) {
		limiter := newAttemptLimiter(3, time.Minute)
		key := "user@portal.local"

		require.Equal(t, true, limiter.Allow(key))
		require.Equal(t, true, limiter.Allow(key))
		require.Equal(t, true, limiter.Allow(key))
		require.Equal(t, false, limiter.Allow(key))
	})

	t.Run(`keys are tracked independently`, func(t *testing.T) {
		limiter := newAttemptLimiter(1, time.Minute)

		require.Equal(t, true, limiter.Allow("primero@portal.local"))
		require.Equal(t, false, limiter.Allow("primero@portal.local"))
		require.Equal(t, true, limiter.Allow("segundo@portal.local"))
	})

	t.Run(`reset clears the counter`, func(t *testing.T) {
		limiter := newAttemptLimiter(1, time.Minute)
		key := "user@portal.local"

		require.Equal(t, true, limiter.Allow(key))
		require.Equal(t, false, limiter.Allow(key))
		limiter.Reset(key)
		require.Equal(t, true, limiter.Allow(key))
	})

	t.Run(`window expiry starts a fresh count`, func(t *testing.T) {
		limiter := newAttemptLimiter(1, 10*time.Millisecond)
		key := "user@portal.local"

		require.Equal(t, true, limiter.Allow(key))
		require.Equal(t, false, limiter.Allow(key))
		time.Sleep(20 * time.Millisecond)
		require.Equal(t, true, limiter.Allow(key))
	})
}
