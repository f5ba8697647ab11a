package auth

import "time"

// Config drives authentication behavior. The signing key is loaded once at
// startup and treated as immutable for the life of the process.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// User represents a persisted account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest captures the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest captures login details.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse returns the signed token.
type TokenResponse struct {
	AuthToken string `json:"authToken"`
}

// UserView trims the account down to its public identity.
type UserView struct {
	Username string `json:"username"`
}

// Claims are extracted from a verified token.
type Claims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
