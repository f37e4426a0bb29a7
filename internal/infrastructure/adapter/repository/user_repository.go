package repository

import (
	"context"
	"errors"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/database"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetBalance(userModel.Balance, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Balance:      user.Balance(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if r.errorMapper.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate username or email on create", map[string]any{
				"username": user.Username,
			})
			return errs.ErrDuplicateUser
		}
		r.logger.Error("Database error when creating user", map[string]any{
			"username": user.Username,
			"error":    result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, database.EntityTypeUser, "creating user")
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"balance":  user.GetBalance(),
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleLookupError(result.Error, "getting user by id", map[string]any{"user_id": id})
	}
	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleLookupError(result.Error, "getting user by username", map[string]any{"username": username})
	}
	return r.modelToEntity(&userModel), nil
}

// Credit atomically adds the amount to the user's balance
func (r *UserRepository) Credit(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amountInCents),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Database error when crediting balance", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypeUser, "crediting balance")
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

// DebitIfSufficient atomically subtracts the amount only when the balance
// covers it. The guard lives in the WHERE clause so two concurrent debits
// can never both pass the check: the second one sees the reduced balance.
func (r *UserRepository) DebitIfSufficient(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance >= ?", userID, amountInCents).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amountInCents),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Database error when debiting balance", map[string]any{
			"user_id": userID,
			"amount":  entity.AmountInCentsToString(amountInCents),
			"error":   result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypeUser, "debiting balance")
	}

	if result.RowsAffected == 0 {
		// No row qualified: either the user doesn't exist or the balance
		// was too low. A plain lookup distinguishes the two.
		if _, err := r.GetByID(ctx, userID); err != nil {
			return nil, err
		}
		return nil, errs.ErrInsufficientBalance
	}

	return r.GetByID(ctx, userID)
}

// handleLookupError standardizes lookup error handling
func (r *UserRepository) handleLookupError(err error, operation string, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	fields["error"] = err.Error()
	r.logger.Error("Database error when "+operation, fields)
	return r.errorMapper.MapError(err, database.EntityTypeUser, operation)
}
