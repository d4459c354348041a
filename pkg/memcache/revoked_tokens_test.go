package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokens_RevokeAndExpire(t *testing.T) {
	store := NewRevokedTokens()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Revoke("jti-1", now.Add(time.Minute))
	store.Revoke("jti-2", now.Add(-time.Second))

	assert.True(t, store.IsRevoked("jti-1"))
	assert.False(t, store.IsRevoked("jti-2"), "already expired tokens need no tracking")
	assert.False(t, store.IsRevoked("unknown"))

	now = now.Add(2 * time.Minute)
	assert.False(t, store.IsRevoked("jti-1"))

	require.Equal(t, 2, store.Sweep())
	require.Equal(t, 0, store.Sweep())
}

func TestRevokedTokens_EmptyIDIgnored(t *testing.T) {
	store := NewRevokedTokens()
	store.Revoke("", time.Now().Add(time.Hour))

	assert.False(t, store.IsRevoked(""))
	assert.Equal(t, 0, store.Sweep())
}
