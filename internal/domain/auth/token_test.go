package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key")

func TestIssueAndVerifyToken(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	signed, expiry, err := issueToken("alice", testKey, time.Hour, now, time.Time{})
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), expiry)
	require.Len(t, strings.Split(signed, "."), 3)

	claims, err := verifyToken(signed, testKey)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, expiry.Unix(), claims.ExpiresAt.Unix())
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestIssueToken_ExpiryFloor(t *testing.T) {
	now := time.Now().UTC()
	floor := now.Add(48 * time.Hour)
	_, expiry, err := issueToken("alice", testKey, time.Hour, now, floor)
	require.NoError(t, err)
	require.Equal(t, floor, expiry)

	// A floor in the past never shortens the window.
	_, expiry, err = issueToken("alice", testKey, time.Hour, now, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), expiry)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	signed, _, err := issueToken("alice", testKey, time.Hour, time.Now(), time.Time{})
	require.NoError(t, err)

	_, err = verifyToken(signed, []byte("some-other-key"))
	require.ErrorIs(t, err, errTokenBadSignature)
}

func TestVerifyToken_Expired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	signed, _, err := issueToken("alice", testKey, time.Hour, past, time.Time{})
	require.NoError(t, err)

	_, err = verifyToken(signed, testKey)
	require.ErrorIs(t, err, errTokenExpired)
}

func TestVerifyToken_NotYetValid(t *testing.T) {
	future := time.Now().Add(time.Hour)
	signed, _, err := issueToken("alice", testKey, time.Hour, future, time.Time{})
	require.NoError(t, err)

	_, err = verifyToken(signed, testKey)
	require.ErrorIs(t, err, errTokenExpired)
}

func TestVerifyToken_Malformed(t *testing.T) {
	_, err := verifyToken("not.a.token", testKey)
	require.ErrorIs(t, err, errTokenMalformed)

	_, err = verifyToken("", testKey)
	require.ErrorIs(t, err, errTokenMalformed)
}

func TestVerifyToken_Tampered(t *testing.T) {
	signed, _, err := issueToken("alice", testKey, time.Hour, time.Now(), time.Time{})
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	forged, _, err := issueToken("mallory", testKey, time.Hour, time.Now(), time.Time{})
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")
	tampered := strings.Join([]string{parts[0], forgedParts[1], parts[2]}, ".")

	_, err = verifyToken(tampered, testKey)
	require.Error(t, err)
}

func TestVerifyToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := tokenClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifyToken(unsigned, testKey)
	require.Error(t, err)
}

func TestVerifyToken_RejectsMissingUsername(t *testing.T) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)

	_, err = verifyToken(signed, testKey)
	require.ErrorIs(t, err, errTokenMalformed)
}
