package http

import (
	"log/slog"

	"ozzus/scicalc/internal/api/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(log *slog.Logger, healthController *HealthController, calculatorController *CalculatorController) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.Logger(log))

	router.GET("/health", healthController.Health)
	router.GET("/status", healthController.Status)
	router.GET("/ready", healthController.Ready)

	api := router.Group("/api/v1")
	api.GET("/operations", calculatorController.Operations)
	api.POST("/calculate", calculatorController.Calculate)

	return router
}
