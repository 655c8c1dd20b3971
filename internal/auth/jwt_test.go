package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tok, err := IssueToken("test-secret", 42, 7)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyToken("test-secret", tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.MID)

	id, err := claims.CustomerID()
	require.NoError(t, err)
	require.Equal(t, 42, id)
	require.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := IssueToken("secret-a", 1, 1)
	require.NoError(t, err)

	_, err = VerifyToken("secret-b", tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := VerifyToken("secret", "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
