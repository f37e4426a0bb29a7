package repository

import (
	"context"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/database"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PredictionRepository implements the PredictionRepository port using GORM
type PredictionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewPredictionRepository creates a new PredictionRepository instance
func NewPredictionRepository(db *gorm.DB, logger coreport.Logger) *PredictionRepository {
	return &PredictionRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// CreateBatch inserts one prediction row per input row in a single statement
func (r *PredictionRepository) CreateBatch(ctx context.Context, predictions []*entity.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	rows := make([]model.Prediction, 0, len(predictions))
	for _, p := range predictions {
		output := p.OutputData
		rows = append(rows, model.Prediction{
			UserID:     p.UserID,
			ModelID:    p.ModelID,
			InputData:  p.InputData,
			OutputData: &output,
		})
	}

	result := r.db.WithContext(ctx).Create(&rows)
	if result.Error != nil {
		r.logger.Error("Database error when recording predictions", map[string]any{
			"user_id": predictions[0].UserID,
			"rows":    len(predictions),
			"error":   result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, database.EntityTypePrediction, "recording predictions")
	}

	for i := range predictions {
		predictions[i].ID = rows[i].ID
	}
	return nil
}

// ListByUser returns a user's prediction history in insertion order
func (r *PredictionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Prediction, error) {
	var rows []model.Prediction
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows)
	if result.Error != nil {
		r.logger.Error("Database error when listing predictions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypePrediction, "listing predictions")
	}

	predictions := make([]*entity.Prediction, 0, len(rows))
	for _, row := range rows {
		entityRow := &entity.Prediction{
			ID:        row.ID,
			UserID:    row.UserID,
			ModelID:   row.ModelID,
			InputData: row.InputData,
		}
		if row.OutputData != nil {
			entityRow.OutputData = *row.OutputData
		}
		predictions = append(predictions, entityRow)
	}
	return predictions, nil
}
