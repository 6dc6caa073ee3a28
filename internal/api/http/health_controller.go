package http

import (
	"context"
	"net/http"
	"time"

	"ozzus/scicalc/internal/domain"

	"github.com/gin-gonic/gin"
)

type StatusProvider interface {
	HealthCheck(ctx context.Context) error
	GetStatus() map[string]interface{}
}

type HealthController struct {
	service   StatusProvider
	serviceID string
}

func NewHealthController(service StatusProvider, serviceID string) *HealthController {
	return &HealthController{
		service:   service,
		serviceID: serviceID,
	}
}

func (h *HealthController) Health(c *gin.Context) {
	if err := h.service.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, domain.HealthResponse{
			Status:    domain.HealthStatusUnhealthy,
			Timestamp: time.Now(),
			ServiceID: h.serviceID,
			Message:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, domain.HealthResponse{
		Status:    domain.HealthStatusHealthy,
		Timestamp: time.Now(),
		ServiceID: h.serviceID,
		Message:   "Calculator is running",
	})
}

func (h *HealthController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetStatus())
}

func (h *HealthController) Ready(c *gin.Context) {
	if err := h.service.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not_ready",
			"service":   h.serviceID,
			"message":   err.Error(),
			"timestamp": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"service":   h.serviceID,
		"message":   "Calculator is ready to accept requests",
		"timestamp": time.Now(),
	})
}
