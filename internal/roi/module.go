package roi

import (
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/platform/validator"
)

// Module wires the ROI calculator HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(val *validator.Validator) *Module {
	return &Module{handler: NewHandler(val)}
}

func (m *Module) Name() string {
	return "roi"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/tools/roi")
	group.GET("/use-cases", m.handler.ListUseCases)
	group.POST("/estimate", m.handler.Estimate)
}

var _ apphttp.Module = (*Module)(nil)
