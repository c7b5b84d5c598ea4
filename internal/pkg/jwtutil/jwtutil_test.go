package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("super-secret", time.Hour, "user-123")
	require.NoError(t, err)

	claims, err := ParseToken("super-secret", token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("secret", -time.Minute, "u1")
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	require.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("right-secret", time.Hour, "u2")
	require.NoError(t, err)

	_, err = ParseToken("wrong-secret", token)
	require.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("k", "not.a.jwt")
	require.Error(t, err)
}
