package readiness

import (
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/platform/validator"
)

// Module wires the readiness assessment HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(val *validator.Validator) *Module {
	return &Module{handler: NewHandler(val)}
}

func (m *Module) Name() string {
	return "readiness"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/tools/readiness")
	group.GET("/questions", m.handler.ListQuestions)
	group.POST("/score", m.handler.Score)
	group.POST("/results", m.handler.Results)
}

var _ apphttp.Module = (*Module)(nil)
