// Package contact provides the contact form bounded context module.
package contact

import (
	"aiconsult_backend/internal/contact/handler"
	"aiconsult_backend/internal/contact/repository"
	"aiconsult_backend/internal/contact/service"
	"aiconsult_backend/internal/events"
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/httpkit"
	"aiconsult_backend/platform/logger"
	"aiconsult_backend/platform/validator"
)

// Module is the contact bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	inbox   repository.Inbox
	limiter *httpkit.IPRateLimiter
}

// NewModule creates the contact module. inbox may be repository.NoopInbox and
// scheduler may be nil when Redis is not configured.
func NewModule(
	inbox repository.Inbox,
	bus events.Bus,
	scheduler service.FollowUpScheduler,
	val *validator.Validator,
	cfg config.ContactConfig,
	log *logger.Logger,
) *Module {
	if inbox == nil {
		inbox = repository.NoopInbox{}
	}
	svc := service.New(inbox, bus, scheduler, cfg, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		inbox:   inbox,
		limiter: httpkit.NewPerMinuteLimiter(cfg.GetContactRateLimitPerMinute(), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contact"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Inbox returns the submission store, shared with the notification module.
func (m *Module) Inbox() repository.Inbox {
	return m.inbox
}

// RegisterRoutes mounts the public form and, when the inbox is persistent,
// the admin inbox routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rateLimit := m.limiter.RateLimit()
	ctx.API.POST("/contact", rateLimit, m.handler.Submit)
	ctx.V1.POST("/contact", rateLimit, m.handler.Submit)

	if !m.inbox.Enabled() {
		return
	}
	admin := ctx.Admin.Group("/contact-submissions")
	admin.GET("", m.handler.List)
	admin.GET("/:id", m.handler.Get)
	admin.PATCH("/:id/handled", m.handler.MarkHandled)
}

var _ apphttp.Module = (*Module)(nil)
