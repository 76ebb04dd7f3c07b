// Package auth issues and validates the bearer tokens handed out by the mock
// backend.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"
)

const (
	// DefaultToken is the opaque token the mock backend hands out.
	DefaultToken = "mock-auth-token-string"
	// DefaultTTL is how long an issued token is reported valid.
	DefaultTTL = time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Token is an issued bearer token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Issuer creates tokens for a user and checks tokens presented back.
type Issuer interface {
	Issue(userID string, now time.Time) (Token, error)
	// Validate returns the user id the token was issued for, when known.
	Validate(token string) (string, error)
}

// StaticIssuer always returns the same opaque value.
type StaticIssuer struct {
	Value string
	TTL   time.Duration
}

func NewStaticIssuer() *StaticIssuer {
	return &StaticIssuer{Value: DefaultToken, TTL: DefaultTTL}
}

func (s *StaticIssuer) Issue(_ string, now time.Time) (Token, error) {
	return Token{Value: s.Value, ExpiresAt: now.Add(s.TTL)}, nil
}

func (s *StaticIssuer) Validate(token string) (string, error) {
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.Value)) != 1 {
		return "", ErrInvalidToken
	}
	return "", nil
}
