package handler

import (
	"net/http"

	domainerr "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/catalog"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/prediction"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/dto"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PredictionHandler handles catalog and prediction HTTP requests
type PredictionHandler struct {
	catalogService *catalog.Service
	workflow       *prediction.Workflow
	logger         coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance
func NewPredictionHandler(
	catalogService *catalog.Service,
	workflow *prediction.Workflow,
	logger coreport.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		catalogService: catalogService,
		workflow:       workflow,
		logger:         logger,
	}
}

// GetModels handles the GET /get_models endpoint
func (h *PredictionHandler) GetModels(c *gin.Context) {
	models, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing models", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	items := make([]dto.ModelItem, 0, len(models))
	for _, m := range models {
		items = append(items, dto.ModelItem{
			ID:   m.ID,
			Name: m.Name,
			Cost: m.GetCost(),
		})
	}

	c.JSON(http.StatusOK, dto.ModelListResponse{Models: items})
}

// Predict handles the POST /predict?model_name=... endpoint
func (h *PredictionHandler) Predict(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	modelName := c.Query("model_name")
	if modelName == "" {
		badRequest(c, "model_name query parameter is required")
		return
	}

	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.workflow.Predict(c.Request.Context(), user.ID, modelName, req.Data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PredictResponse{
		CategoryID:   result.CategoryID,
		CategoryName: result.CategoryName,
	})
}

// GetPredictions handles the GET /get_predictions endpoint
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	predictions, err := h.workflow.History(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Error listing predictions", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	items := make([]dto.PredictionItem, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, dto.PredictionItem{
			ID:               p.ID,
			PredictedModelID: p.ModelID,
			InputData:        p.InputData,
			Result:           p.OutputData,
		})
	}

	c.JSON(http.StatusOK, items)
}
