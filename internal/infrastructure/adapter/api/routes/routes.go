package routes

import (
	coreport "github.com/nsokolova/prediction-service/internal/domain/port/core"
	"github.com/nsokolova/prediction-service/internal/domain/usecase/auth"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/handler"
	"github.com/nsokolova/prediction-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API.
// Paths mirror the public surface this service has always exposed.
func SetupRoutes(
	router *gin.Engine,
	authService *auth.Service,
	authHandler *handler.AuthHandler,
	predictionHandler *handler.PredictionHandler,
	balanceHandler *handler.BalanceHandler,
) {
	// Public routes
	router.POST("/users/register", authHandler.Register)
	router.POST("/token", authHandler.Token)
	router.GET("/get_models", predictionHandler.GetModels)

	// Bearer-authenticated routes
	authenticated := router.Group("/", middleware.BearerAuth(authService))
	{
		authenticated.GET("/users/me/", authHandler.Me)
		authenticated.GET("/get_predictions", predictionHandler.GetPredictions)
		authenticated.POST("/predict", predictionHandler.Predict)
		authenticated.POST("/increment_money", balanceHandler.IncrementMoney)
		authenticated.GET("/get_balance", balanceHandler.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
