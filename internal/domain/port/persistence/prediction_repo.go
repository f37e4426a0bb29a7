package persistence

import (
	"context"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
)

// PredictionRepository defines methods for the append-only prediction history
type PredictionRepository interface {
	// CreateBatch inserts one prediction row per input row, all sharing the
	// same output label
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CreateBatch(ctx context.Context, predictions []*entity.Prediction) error

	// ListByUser returns a user's prediction history in insertion order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Prediction, error)
}
