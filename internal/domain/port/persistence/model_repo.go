package persistence

import (
	"context"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
)

// ModelRepository defines methods to interact with the model catalog
type ModelRepository interface {
	// Create persists a catalog entry
	//
	// Possible errors:
	// - ErrDuplicateModel: If a model with the same name already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, model *entity.Model) error

	// GetByName retrieves a model by its unique name
	//
	// Possible errors:
	// - ErrModelNotFound: If no model has the given name
	// - ErrDatabaseConnection: If database connection fails
	GetByName(ctx context.Context, name string) (*entity.Model, error)

	// List returns all catalog entries ordered by id
	List(ctx context.Context) ([]*entity.Model, error)
}
