package roi

import (
	"net/http"

	"aiconsult_backend/platform/httpkit"
	"aiconsult_backend/platform/metrics"
	"aiconsult_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler exposes the ROI calculator endpoints.
type Handler struct {
	val *validator.Validator
}

func NewHandler(val *validator.Validator) *Handler {
	return &Handler{val: val}
}

// ListUseCases handles GET /api/v1/tools/roi/use-cases
func (h *Handler) ListUseCases(c *gin.Context) {
	httpkit.OK(c, gin.H{"items": UseCases(), "default": DefaultUseCase})
}

// Estimate handles POST /api/v1/tools/roi/estimate
func (h *Handler) Estimate(c *gin.Context) {
	var req Inputs
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Describe(err))
		return
	}

	metrics.ToolCalculations.WithLabelValues("roi").Inc()
	httpkit.OK(c, EstimateResponse{
		UseCase: ResolveUseCase(req.UseCase),
		Results: Calculate(req),
	})
}
