package billing

import (
	"context"
	"errors"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/port/persistence"
)

// Ledger implements balance read, credit and guarded debit operations.
// The sufficiency check and the debit happen in one conditional update at the
// repository level, so concurrent debits for the same user serialize on the
// database row and a balance can never go negative.
type Ledger struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewLedger creates a new billing ledger instance
func NewLedger(userRepo persistence.UserRepository, logger coreport.Logger) *Ledger {
	return &Ledger{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetBalance returns a user's balance formatted with 2 decimal places
func (l *Ledger) GetBalance(ctx context.Context, userID uint64) (string, error) {
	if userID == 0 {
		return "", errs.ErrInvalidUserID
	}

	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.GetBalance(), nil
}

// Credit adds the amount (a decimal string like "50.00") to the user's
// balance and returns the updated user
func (l *Ledger) Credit(ctx context.Context, userID uint64, amount string) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	user, err := l.userRepo.Credit(ctx, userID, amountInCents)
	if err != nil {
		l.logger.Error("Failed to credit balance", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Balance credited", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"new_balance": user.GetBalance(),
	})
	return user, nil
}

// CreditCents adds an exact cent amount to the user's balance.
// Used by the prediction workflow to refund a debit after a failed inference.
func (l *Ledger) CreditCents(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return l.userRepo.Credit(ctx, userID, amountInCents)
}

// Debit subtracts an exact cent amount if the balance covers it.
// Fails with a detailed insufficient-balance error otherwise, leaving the
// balance unchanged.
func (l *Ledger) Debit(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := l.userRepo.DebitIfSufficient(ctx, userID, amountInCents)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientBalance) {
			balance := "unknown"
			if current, getErr := l.userRepo.GetByID(ctx, userID); getErr == nil {
				balance = current.GetBalance()
			}
			l.logger.Warn("Debit rejected, insufficient balance", map[string]any{
				"user_id":         userID,
				"required":        entity.AmountInCentsToString(amountInCents),
				"current_balance": balance,
			})
			return nil, errs.NewInsufficientBalanceError(userID, entity.AmountInCentsToString(amountInCents), balance)
		}
		l.logger.Error("Failed to debit balance", map[string]any{
			"user_id": userID,
			"amount":  entity.AmountInCentsToString(amountInCents),
			"error":   err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Balance debited", map[string]any{
		"user_id":     userID,
		"amount":      entity.AmountInCentsToString(amountInCents),
		"new_balance": user.GetBalance(),
	})
	return user, nil
}
