package readiness

import (
	"errors"
	"net/http"

	"aiconsult_backend/platform/apperr"
	"aiconsult_backend/platform/httpkit"
	"aiconsult_backend/platform/metrics"
	"aiconsult_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request"

// Handler exposes the readiness assessment endpoints.
type Handler struct {
	val *validator.Validator
}

func NewHandler(val *validator.Validator) *Handler {
	return &Handler{val: val}
}

// ListQuestions handles GET /api/v1/tools/readiness/questions
func (h *Handler) ListQuestions(c *gin.Context) {
	httpkit.OK(c, gin.H{"categories": Categories, "items": Questions()})
}

// Score handles POST /api/v1/tools/readiness/score. Any subset of answers is accepted.
func (h *Handler) Score(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	metrics.ToolCalculations.WithLabelValues("readiness_score").Inc()
	httpkit.OK(c, BuildReport(req.Answers))
}

// Results handles POST /api/v1/tools/readiness/results. Every question must be answered.
func (h *Handler) Results(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	report, err := Replay(req.Answers)
	if err != nil {
		var replayErr *ReplayError
		if errors.As(err, &replayErr) {
			httpkit.HandleError(c, apperr.Validation(replayErr.Err.Error()).
				WithOp("readiness.Results").
				WithDetails(gin.H{"questionId": replayErr.QuestionID}))
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	metrics.ToolCalculations.WithLabelValues("readiness_results").Inc()
	httpkit.OK(c, report)
}

func (h *Handler) bind(c *gin.Context) (AnswersRequest, bool) {
	var req AnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, validator.Summary(err), validator.Describe(err))
		return req, false
	}
	return req, true
}
