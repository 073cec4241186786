// Package content serves the site's static catalogs: the use case explorer,
// the integrations list and the blog.
package content

import (
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/logger"
)

// Module wires the content HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule loads the blog manifest once; a broken manifest fails startup.
func NewModule(cfg config.ContentConfig, log *logger.Logger) (*Module, error) {
	blog, err := LoadBlog(cfg.GetBlogManifestPath())
	if err != nil {
		return nil, err
	}
	log.Info("blog manifest loaded", "posts", len(blog.posts), "path", cfg.GetBlogManifestPath())
	return &Module{handler: NewHandler(blog)}, nil
}

func (m *Module) Name() string {
	return "content"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/use-cases", m.handler.ListUseCases)
	ctx.V1.GET("/use-cases/facets", m.handler.UseCaseFacets)
	ctx.V1.GET("/integrations", m.handler.ListIntegrations)

	blog := ctx.V1.Group("/blog")
	blog.GET("/posts", m.handler.ListPosts)
	blog.GET("/posts/:slug", m.handler.GetPost)
	blog.GET("/tags", m.handler.ListTags)
}

var _ apphttp.Module = (*Module)(nil)
