package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentCfg struct{ path string }

func (c contentCfg) GetBlogManifestPath() string { return c.path }

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	module, err := NewModule(contentCfg{}, logger.Discard())
	require.NoError(t, err)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: v1})
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestUseCaseEndpointFilters(t *testing.T) {
	engine := newEngine(t)

	rec := get(engine, "/api/v1/use-cases?q=forecast&industry=Retail&function=all")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []UseCase `json:"items"`
		Total int       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "demand-forecasting", body.Items[0].ID)

	rec = get(engine, "/api/v1/use-cases?tags=LLM&tags=NLP")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)

	rec = get(engine, "/api/v1/use-cases")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, len(useCases), body.Total)
}

func TestBlogEndpoints(t *testing.T) {
	engine := newEngine(t)

	rec := get(engine, "/api/v1/blog/posts/calculating-ai-roi")
	require.Equal(t, http.StatusOK, rec.Code)
	var post Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Daniel Ortiz", post.Author)
	assert.NotEmpty(t, post.Body)

	rec = get(engine, "/api/v1/blog/posts/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(engine, "/api/v1/blog/tags")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mlops")
}

func TestIntegrationsEndpoint(t *testing.T) {
	engine := newEngine(t)
	rec := get(engine, "/api/v1/integrations?category=CRM")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
}

func TestNewModuleFailsOnMissingManifest(t *testing.T) {
	_, err := NewModule(contentCfg{path: "/does/not/exist.yaml"}, logger.Discard())
	assert.Error(t, err)
}
