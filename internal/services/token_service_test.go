package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("round-trip-secret", 30*time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_ZeroTTLFailsVerify(t *testing.T) {
	svc := NewTokenService("round-trip-secret", 0)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiredTokenFailsVerify(t *testing.T) {
	svc := NewTokenService("round-trip-secret", -time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongKeyFailsVerify(t *testing.T) {
	issuer := NewTokenService("signing-key-a", 30*time.Minute)
	verifier := NewTokenService("signing-key-b", 30*time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_GarbageFailsVerify(t *testing.T) {
	svc := NewTokenService("round-trip-secret", 30*time.Minute)

	for _, garbage := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(garbage)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
