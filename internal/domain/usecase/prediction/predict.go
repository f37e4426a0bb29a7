package prediction

import (
	"context"
	"time"

	"github.com/nsokolova/prediction-service/internal/domain/entity"
	errs "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/port/inference"
	"github.com/nsokolova/prediction-service/internal/domain/port/persistence"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/billing"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/catalog"
)

// DefaultInferenceTimeout bounds a classifier call when none is configured
const DefaultInferenceTimeout = 30 * time.Second

// Result is the outcome of a successful prediction call
type Result struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// Workflow orchestrates catalog lookup, balance debit, inference and history
// persistence for pay-per-prediction calls
type Workflow struct {
	catalog          *catalog.Service
	ledger           *billing.Ledger
	registry         inference.Registry
	predictionRepo   persistence.PredictionRepository
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
	inferenceTimeout time.Duration
}

// NewWorkflow creates a new prediction workflow instance
func NewWorkflow(
	catalogService *catalog.Service,
	ledger *billing.Ledger,
	registry inference.Registry,
	predictionRepo persistence.PredictionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	inferenceTimeout time.Duration,
) *Workflow {
	if inferenceTimeout <= 0 {
		inferenceTimeout = DefaultInferenceTimeout
	}
	return &Workflow{
		catalog:          catalogService,
		ledger:           ledger,
		registry:         registry,
		predictionRepo:   predictionRepo,
		timeProvider:     timeProvider,
		logger:           logger,
		inferenceTimeout: inferenceTimeout,
	}
}

// Predict charges the user for one call of the named model, runs inference
// over the input rows and records one history row per input row.
//
// Failure ordering matters: an unknown model fails before any debit, and an
// inference failure after the debit refunds the charge before surfacing.
func (w *Workflow) Predict(ctx context.Context, userID uint64, modelName string, rows []string) (*Result, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if len(rows) == 0 {
		return nil, errs.ErrInvalidRequest
	}

	model, err := w.catalog.GetByName(ctx, modelName)
	if err != nil {
		return nil, err
	}

	classifier, err := w.registry.Resolve(model.Name)
	if err != nil {
		return nil, err
	}

	if _, err := w.ledger.Debit(ctx, userID, model.Cost()); err != nil {
		return nil, err
	}

	categoryID, err := w.runInference(ctx, classifier, rows)
	if err != nil {
		w.refund(ctx, userID, model)
		w.logger.Error("Inference call failed", map[string]any{
			"user_id": userID,
			"model":   model.Name,
			"error":   err.Error(),
		})
		return nil, errs.NewInferenceError(model.Name, err)
	}

	label := entity.CategoryLabel(categoryID)

	predictions := make([]*entity.Prediction, 0, len(rows))
	for _, row := range rows {
		predictions = append(predictions, &entity.Prediction{
			UserID:     userID,
			ModelID:    model.ID,
			InputData:  row,
			OutputData: label,
		})
	}
	if err := w.predictionRepo.CreateBatch(ctx, predictions); err != nil {
		// The user got their answer; a history write failure is logged but
		// does not claw back the result.
		w.logger.Error("Failed to record prediction history", map[string]any{
			"user_id": userID,
			"model":   model.Name,
			"rows":    len(rows),
			"error":   err.Error(),
		})
	}

	w.logger.Info("Prediction completed", map[string]any{
		"user_id":     userID,
		"model":       model.Name,
		"rows":        len(rows),
		"category_id": categoryID,
		"category":    label,
	})

	return &Result{CategoryID: categoryID, CategoryName: label}, nil
}

// History returns the user's prediction history in insertion order
func (w *Workflow) History(ctx context.Context, userID uint64) ([]*entity.Prediction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return w.predictionRepo.ListByUser(ctx, userID)
}

// runInference calls the classifier under the configured deadline
func (w *Workflow) runInference(ctx context.Context, classifier inference.Classifier, rows []string) (int, error) {
	inferCtx, cancel := w.timeProvider.WithTimeout(ctx, w.inferenceTimeout)
	defer cancel()
	return classifier.Predict(inferCtx, rows)
}

// refund returns the model cost after a failed inference. A refund failure
// leaves the user charged with no result, so it is logged loudly for manual
// reconciliation.
func (w *Workflow) refund(ctx context.Context, userID uint64, model *entity.Model) {
	if _, err := w.ledger.CreditCents(ctx, userID, model.Cost()); err != nil {
		w.logger.Error("Refund after failed inference did not apply", map[string]any{
			"user_id": userID,
			"model":   model.Name,
			"amount":  model.GetCost(),
			"error":   err.Error(),
		})
		return
	}

	w.logger.Info("Charge refunded after failed inference", map[string]any{
		"user_id": userID,
		"model":   model.Name,
		"amount":  model.GetCost(),
	})
}
