package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coremocks "github.com/nsokolova/prediction-service/mocks/port/core"
	persistencemocks "github.com/nsokolova/prediction-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns all catalog entries", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		models := []*entity.Model{
			entity.NewModel(1, "rf_model", 7000),
			entity.NewModel(2, "svc_model", 10000),
			entity.NewModel(3, "catboost_model", 13000),
		}
		mockRepo.EXPECT().List(mock.Anything).Return(models, nil).Once()

		service := NewService(mockRepo, mockLogger)

		result, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "rf_model", result[0].Name)
		assert.Equal(t, "70.00", result[0].GetCost())
		assert.Equal(t, "svc_model", result[1].Name)
		assert.Equal(t, "100.00", result[1].GetCost())
		assert.Equal(t, "catboost_model", result[2].Name)
		assert.Equal(t, "130.00", result[2].GetCost())
	})
}

func TestGetByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves a model by name", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByName(mock.Anything, "rf_model").
			Return(entity.NewModel(1, "rf_model", 7000), nil).Once()

		service := NewService(mockRepo, mockLogger)

		model, err := service.GetByName(ctx, "rf_model")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), model.ID)
		assert.Equal(t, int64(7000), model.Cost())
	})

	t.Run("Unknown name fails with ErrModelNotFound", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByName(mock.Anything, "gpt_model").
			Return(nil, errs.ErrModelNotFound).Once()

		service := NewService(mockRepo, mockLogger)

		model, err := service.GetByName(ctx, "gpt_model")

		assert.Nil(t, model)
		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})

	t.Run("Empty name short-circuits without a lookup", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockRepo, mockLogger)

		model, err := service.GetByName(ctx, "")

		assert.Nil(t, model)
		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds all default models into an empty catalog", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		for _, seed := range DefaultModels {
			mockRepo.EXPECT().GetByName(mock.Anything, seed.Name).
				Return(nil, errs.ErrModelNotFound).Once()
		}
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(model *entity.Model) bool {
			return model.ID >= 1 && model.ID <= 3
		})).Return(nil).Times(3)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Times(3)

		service := NewService(mockRepo, mockLogger)

		err := service.Seed(ctx)

		assert.NoError(t, err)
	})

	t.Run("Skips models that already exist", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		// rf_model exists, the other two do not
		mockRepo.EXPECT().GetByName(mock.Anything, "rf_model").
			Return(entity.NewModel(1, "rf_model", 7000), nil).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "svc_model").
			Return(nil, errs.ErrModelNotFound).Once()
		mockRepo.EXPECT().GetByName(mock.Anything, "catboost_model").
			Return(nil, errs.ErrModelNotFound).Once()

		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(model *entity.Model) bool {
			return model.Name == "svc_model" || model.Name == "catboost_model"
		})).Return(nil).Times(2)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Times(3)

		service := NewService(mockRepo, mockLogger)

		err := service.Seed(ctx)

		assert.NoError(t, err)
	})

	t.Run("Tolerates a concurrent seeder winning the insert race", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		for _, seed := range DefaultModels {
			mockRepo.EXPECT().GetByName(mock.Anything, seed.Name).
				Return(nil, errs.ErrModelNotFound).Once()
		}
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateModel).Times(3)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Times(3)

		service := NewService(mockRepo, mockLogger)

		err := service.Seed(ctx)

		assert.NoError(t, err)
	})

	t.Run("Aborts on unexpected database errors", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockModelRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().GetByName(mock.Anything, "rf_model").
			Return(nil, databaseError).Once()

		service := NewService(mockRepo, mockLogger)

		err := service.Seed(ctx)

		assert.Equal(t, databaseError, err)
	})
}
