package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/port/security"
)

// JWTManager implements TokenManager with HS256-signed JWTs.
// Claims are {sub: username, exp, iat}; verification uses the TimeProvider
// clock so expiry behavior is testable.
type JWTManager struct {
	secret       []byte
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a token manager signing with the given symmetric secret
func NewJWTManager(secret string, timeProvider coreport.TimeProvider) (security.TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &JWTManager{
		secret:       []byte(secret),
		timeProvider: timeProvider,
	}, nil
}

// Issue creates a signed token binding the username with the given TTL
func (m *JWTManager) Issue(username string, ttl time.Duration) (string, error) {
	now := m.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the embedded username
func (m *JWTManager) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.ErrInvalidToken
	}

	return claims.Subject, nil
}
