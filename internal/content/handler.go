package content

import (
	"net/http"

	"aiconsult_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type useCaseQuery struct {
	Search     string   `form:"q"`
	Tags       []string `form:"tags"`
	Industry   string   `form:"industry"`
	Function   string   `form:"function"`
	Complexity string   `form:"complexity"`
}

type catalogQuery struct {
	Search   string   `form:"q"`
	Tags     []string `form:"tags"`
	Category string   `form:"category"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) listResponse[T] {
	return listResponse[T]{Items: items, Total: len(items)}
}

// Handler serves the content catalogs.
type Handler struct {
	blog *Blog
}

func NewHandler(blog *Blog) *Handler {
	return &Handler{blog: blog}
}

// ListUseCases handles GET /api/v1/use-cases?q=&tags=&industry=&function=&complexity=
func (h *Handler) ListUseCases(c *gin.Context) {
	var req useCaseQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query", nil)
		return
	}

	items := Filter(useCases, Query{
		Search: req.Search,
		Tags:   req.Tags,
		Facets: map[string]string{
			FacetIndustry:   req.Industry,
			FacetFunction:   req.Function,
			FacetComplexity: req.Complexity,
		},
	})
	httpkit.OK(c, newListResponse(items))
}

// UseCaseFacets handles GET /api/v1/use-cases/facets
func (h *Handler) UseCaseFacets(c *gin.Context) {
	httpkit.OK(c, Facets())
}

// ListIntegrations handles GET /api/v1/integrations?q=&tags=&category=
func (h *Handler) ListIntegrations(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	httpkit.OK(c, newListResponse(Filter(integrations, q)))
}

// ListPosts handles GET /api/v1/blog/posts?q=&tags=&category=
func (h *Handler) ListPosts(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	httpkit.OK(c, newListResponse(h.blog.Posts(q)))
}

// GetPost handles GET /api/v1/blog/posts/:slug
func (h *Handler) GetPost(c *gin.Context) {
	post, ok := h.blog.Post(c.Param("slug"))
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "post not found", nil)
		return
	}
	httpkit.OK(c, post)
}

// ListTags handles GET /api/v1/blog/tags
func (h *Handler) ListTags(c *gin.Context) {
	httpkit.OK(c, gin.H{"tags": h.blog.Tags(), "categories": h.blog.Categories()})
}

func bindCatalogQuery(c *gin.Context) (Query, bool) {
	var req catalogQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid query", nil)
		return Query{}, false
	}
	return Query{
		Search: req.Search,
		Tags:   req.Tags,
		Facets: map[string]string{FacetCategory: req.Category},
	}, true
}
