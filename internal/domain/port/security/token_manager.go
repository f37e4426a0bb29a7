package security

import "time"

// TokenManager issues and verifies signed, time-limited bearer tokens
type TokenManager interface {
	// Issue creates a signed token binding the username with the given TTL
	Issue(username string, ttl time.Duration) (string, error)

	// Verify validates the token signature and expiry and returns the
	// embedded username
	//
	// Possible errors:
	// - ErrInvalidToken: On signature mismatch, expiry or missing subject
	Verify(token string) (string, error)
}
