package handler

import (
	"net/http"

	domainerr "github.com/nsokolova/prediction-service/internal/domain/error"
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/billing"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/dto"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// BalanceHandler handles balance read and top-up HTTP requests
type BalanceHandler struct {
	ledger *billing.Ledger
	logger coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(ledger *billing.Ledger, logger coreport.Logger) *BalanceHandler {
	return &BalanceHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetBalance handles the GET /get_balance endpoint
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Error getting user balance", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// IncrementMoney handles the POST /increment_money?amount=... endpoint
func (h *BalanceHandler) IncrementMoney(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	amount := c.Query("amount")
	if amount == "" {
		badRequest(c, "amount query parameter is required")
		return
	}

	updated, err := h.ledger.Credit(c.Request.Context(), user.ID, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MoneyResponse{
		ID:       updated.ID,
		Username: updated.Username,
		Money:    updated.GetBalance(),
	})
}
