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

// ModelRepository implements the ModelRepository port using GORM
type ModelRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewModelRepository creates a new ModelRepository instance
func NewModelRepository(db *gorm.DB, logger coreport.Logger) *ModelRepository {
	return &ModelRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// Create persists a catalog entry
func (r *ModelRepository) Create(ctx context.Context, m *entity.Model) error {
	modelRow := model.PredictionModel{
		ID:   m.ID,
		Name: m.Name,
		Cost: m.Cost(),
	}

	result := r.db.WithContext(ctx).Create(&modelRow)
	if result.Error != nil {
		if r.errorMapper.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateModel
		}
		r.logger.Error("Database error when creating model", map[string]any{
			"model": m.Name,
			"error": result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, database.EntityTypeModel, "creating model")
	}

	return nil
}

// GetByName retrieves a model by its unique name
func (r *ModelRepository) GetByName(ctx context.Context, name string) (*entity.Model, error) {
	var modelRow model.PredictionModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&modelRow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrModelNotFound
		}
		r.logger.Error("Database error when getting model by name", map[string]any{
			"model": name,
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypeModel, "getting model")
	}

	return entity.NewModel(modelRow.ID, modelRow.Name, modelRow.Cost), nil
}

// List returns all catalog entries ordered by id
func (r *ModelRepository) List(ctx context.Context) ([]*entity.Model, error) {
	var rows []model.PredictionModel
	result := r.db.WithContext(ctx).Order("id").Find(&rows)
	if result.Error != nil {
		r.logger.Error("Database error when listing models", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, database.EntityTypeModel, "listing models")
	}

	models := make([]*entity.Model, 0, len(rows))
	for _, row := range rows {
		models = append(models, entity.NewModel(row.ID, row.Name, row.Cost))
	}
	return models, nil
}
