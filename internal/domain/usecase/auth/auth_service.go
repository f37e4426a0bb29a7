package auth

import (
	"context"
	"errors"
	"time"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/port/persistence"
	"github.com/nsokolova/prediction-service/internal/domain/port/security"
)

// DefaultTokenTTL is the access token lifetime used when none is configured
const DefaultTokenTTL = 30 * time.Minute

// Service implements registration, credential verification and token handling
type Service struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	tokenTTL     time.Duration
}

// NewService creates a new auth service instance
func NewService(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	tokenTTL time.Duration,
) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		tokenTTL:     tokenTTL,
	}
}

// Register creates a new user with a hashed credential and returns a fresh
// access token. Duplicate username or email fails with ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, username, password, email string) (string, error) {
	if username == "" || password == "" {
		return "", errs.ErrInvalidRequest
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, email, hash, s.timeProvider)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			s.logger.Warn("Registration attempt with taken username or email", map[string]any{
				"username": username,
			})
			return "", errs.ErrDuplicateUser
		}
		s.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", err
	}

	s.logger.Info("User registered", map[string]any{
		"username": username,
		"balance":  user.GetBalance(),
	})

	return s.tokens.Issue(username, s.tokenTTL)
}

// Authenticate verifies a username/password pair and returns the user.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return user, nil
}

// Login verifies credentials and issues an access token
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if _, err := s.Authenticate(ctx, username, password); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(username, s.tokenTTL)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{
		"username": username,
	})
	return token, nil
}

// CurrentUser resolves a bearer token to the user it was issued for.
// Any verification or lookup failure surfaces as ErrInvalidToken.
func (s *Service) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
