package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", true, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, isAdmin, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", sub)
	require.True(t, isAdmin)
}

func TestTokenNonAdmin(t *testing.T) {
	token, err := GenerateToken("user-456", false, time.Hour)
	require.NoError(t, err)

	_, isAdmin, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", false, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not.a.token")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	require.Equal(t, HashToken("abc"), HashToken("abc"))
	require.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
