package entity

import (
	"time"

	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
)

// DefaultInitialBalance is granted to every newly registered user ("300.00")
const DefaultInitialBalance int64 = 30000

// User represents a registered account with a balance
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	balance      int64 // Balance stored in cents to avoid floating point precision issues (private)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with the default initial balance
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" || passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		balance:      DefaultInitialBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// CanDeduct checks if the user has enough balance for a deduction
func (u *User) CanDeduct(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// ApplyCredit adds the amount to the balance
func (u *User) ApplyCredit(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
}

// ApplyDebit subtracts the amount from balance if sufficient balance exists.
// Returns error if insufficient balance.
func (u *User) ApplyDebit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < amountInCents {
		return errs.ErrInsufficientBalance
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
