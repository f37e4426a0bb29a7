package catalog

import (
	"context"
	"errors"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/port/persistence"
)

// SeedModel describes one catalog entry to create at startup
type SeedModel struct {
	ID   uint64
	Name string
	Cost int64 // cents
}

// DefaultModels is the fixed catalog seeded at startup
var DefaultModels = []SeedModel{
	{ID: 1, Name: "rf_model", Cost: 7000},
	{ID: 2, Name: "svc_model", Cost: 10000},
	{ID: 3, Name: "catboost_model", Cost: 13000},
}

// Service exposes the read-mostly model catalog
type Service struct {
	modelRepo persistence.ModelRepository
	logger    coreport.Logger
}

// NewService creates a new catalog service instance
func NewService(modelRepo persistence.ModelRepository, logger coreport.Logger) *Service {
	return &Service{
		modelRepo: modelRepo,
		logger:    logger,
	}
}

// List returns all catalog entries ordered by id
func (s *Service) List(ctx context.Context) ([]*entity.Model, error) {
	return s.modelRepo.List(ctx)
}

// GetByName resolves a model by its public name
func (s *Service) GetByName(ctx context.Context, name string) (*entity.Model, error) {
	if name == "" {
		return nil, errs.ErrModelNotFound
	}
	return s.modelRepo.GetByName(ctx, name)
}

// Seed creates the default catalog entries. Seeding is idempotent: an entry
// that already exists is logged and skipped, never failing the process.
func (s *Service) Seed(ctx context.Context) error {
	for _, seed := range DefaultModels {
		if _, err := s.modelRepo.GetByName(ctx, seed.Name); err == nil {
			s.logger.Info("Catalog model already exists", map[string]any{
				"model": seed.Name,
			})
			continue
		} else if !errors.Is(err, errs.ErrModelNotFound) {
			return err
		}

		model := entity.NewModel(seed.ID, seed.Name, seed.Cost)
		if err := s.modelRepo.Create(ctx, model); err != nil {
			// A concurrent seeder may have won the race; duplicate inserts
			// are tolerated, anything else aborts startup.
			if errors.Is(err, errs.ErrDuplicateModel) {
				s.logger.Warn("Duplicate catalog seed ignored", map[string]any{
					"model": seed.Name,
				})
				continue
			}
			s.logger.Error("Failed to seed catalog model", map[string]any{
				"model": seed.Name,
				"error": err.Error(),
			})
			return err
		}

		s.logger.Info("Catalog model seeded", map[string]any{
			"model": seed.Name,
			"cost":  model.GetCost(),
		})
	}

	return nil
}
