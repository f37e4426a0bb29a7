package persistence

import (
	"context"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create persists a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If username or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	// Used by credential verification and token subject resolution
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified username doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Credit atomically adds the amount to the user's balance and returns
	// the updated user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error)

	// DebitIfSufficient atomically subtracts the amount from the user's
	// balance only when the current balance covers it. The sufficiency check
	// and the subtraction are a single conditional update so concurrent
	// debits can never drive a balance negative.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If balance < amount
	// - ErrDatabaseConnection: If database connection fails
	DebitIfSufficient(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error)
}
