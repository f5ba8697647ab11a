package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClockSkew backdates the not-before claim so a token issued here is
// immediately usable on hosts whose clocks run slightly behind.
const tokenClockSkew = 30 * time.Second

// The codec distinguishes three failure kinds internally. Callers collapse
// all of them to a single unauthorized response; the kind only feeds logs.
var (
	errTokenMalformed    = errors.New("malformed token")
	errTokenBadSignature = errors.New("token signature mismatch")
	errTokenExpired      = errors.New("token outside validity window")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// issueToken signs a compact HS256 token carrying the identity claim, valid
// from now minus the skew allowance until now plus ttl. A non-zero minExpiry
// floors the expiration so refreshed tokens never expire earlier than the
// token they replace.
func issueToken(username string, key []byte, ttl time.Duration, now time.Time, minExpiry time.Time) (string, time.Time, error) {
	expiry := now.Add(ttl)
	if minExpiry.After(expiry) {
		expiry = minExpiry
	}
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-tokenClockSkew)),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// verifyToken decodes and checks the token against the current signing key.
// The parser is pinned to HS256: a token signed with "none" or any other
// algorithm fails before its claims are considered.
func verifyToken(tokenString string, key []byte) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, classifyTokenError(err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, errTokenMalformed
	}
	if claims.Username == "" || claims.ExpiresAt == nil {
		return Claims{}, errTokenMalformed
	}
	out := Claims{
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return errTokenExpired
	default:
		return errTokenMalformed
	}
}
