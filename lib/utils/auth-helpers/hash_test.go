package authhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run(`same password and salt give the same hash`, func(t *testing.T) {
		salt := NewSalt()
		require.Equal(t, HashPassword("secreto", salt), HashPassword("secreto", salt))
	})

	t.Run(`different salts give different hashes`, func(t *testing.T) {
		require.NotEqual(t, HashPassword("secreto", NewSalt()), HashPassword("secreto", NewSalt()))
	})

	t.Run(`salts are unique`, func(t *testing.T) {
		require.NotEqual(t, NewSalt(), NewSalt())
	})
}
