package http

import (
	"net/http"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/domain"

	"github.com/gin-gonic/gin"
)

type Evaluator interface {
	Evaluate(calc domain.Calculation) (domain.CalculationResult, error)
}

type CalculatorController struct {
	evaluator Evaluator
}

func NewCalculatorController(evaluator Evaluator) *CalculatorController {
	return &CalculatorController{evaluator: evaluator}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Operations handles GET /api/v1/operations.
func (h *CalculatorController) Operations(c *gin.Context) {
	ops := domain.Operations()
	out := make([]domain.OperationInfo, 0, len(ops))
	for _, op := range ops {
		out = append(out, domain.OperationInfo{Name: op, Arity: op.Arity()})
	}

	c.JSON(http.StatusOK, gin.H{"operations": out})
}

// Calculate handles POST /api/v1/calculate. Value-domain failures answer
// 422; every other calculator failure is a bad request.
func (h *CalculatorController) Calculate(c *gin.Context) {
	var req domain.Calculation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.evaluator.Evaluate(req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case calculator.IsDomainError(err):
		c.JSON(http.StatusUnprocessableEntity, result)
	default:
		c.JSON(http.StatusBadRequest, result)
	}
}
