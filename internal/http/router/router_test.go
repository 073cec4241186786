package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aiconsult_backend/internal/events"
	apphttp "aiconsult_backend/internal/http"
	"aiconsult_backend/internal/roi"
	"aiconsult_backend/platform/httpkit"
	"aiconsult_backend/platform/logger"
	"aiconsult_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	proxies []string
}

func (testConfig) GetHTTPAddr() string           { return ":0" }
func (testConfig) GetCORSAllowAll() bool         { return false }
func (testConfig) GetCORSOrigins() []string      { return []string{"https://site.example.com"} }
func (testConfig) GetCORSAllowCreds() bool       { return false }
func (testConfig) GetAdminJWTSecret() string     { return "secret" }
func (c testConfig) GetTrustedProxies() []string { return c.proxies }

type failingHealth struct{}

func (failingHealth) Ping(context.Context) error { return errors.New("connection refused") }

type adminStub struct{}

func (adminStub) Name() string { return "admin-stub" }

func (adminStub) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

// limitedModule mounts a one-request-per-minute endpoint.
type limitedModule struct{}

func (limitedModule) Name() string { return "limited" }

func (limitedModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	limiter := httpkit.NewPerMinuteLimiter(1, logger.Discard())
	ctx.API.POST("/limited", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newApp(health apphttp.HealthChecker) *apphttp.App {
	log := logger.Discard()
	return &apphttp.App{
		Config:   testConfig{},
		Logger:   log,
		Health:   health,
		EventBus: events.NewInMemoryBus(log),
		Modules:  []apphttp.Module{roi.NewModule(validator.New()), adminStub{}},
	}
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(New(newApp(nil)), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(New(newApp(failingHealth{})), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded"}`, rec.Body.String())
}

func TestModuleRoutesAreMounted(t *testing.T) {
	engine := New(newApp(nil))

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/api/v1/tools/roi/use-cases", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(engine, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAdminGroupRequiresToken(t *testing.T) {
	rec := serve(New(newApp(nil)), httptest.NewRequest(http.MethodGet, "/api/v1/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	engine := New(newApp(nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://site.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(engine, req)
	assert.Equal(t, "https://site.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = serve(engine, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func postLimited(engine *gin.Engine, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/limited", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", forwardedFor)
	return serve(engine, req).Code
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	app := newApp(nil)
	app.Modules = []apphttp.Module{limitedModule{}}
	engine := New(app)

	assert.Equal(t, http.StatusNoContent, postLimited(engine, "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, postLimited(engine, "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, postLimited(engine, "198.51.100.3"))
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	app := newApp(nil)
	app.Config = testConfig{proxies: []string{"192.0.2.0/24"}}
	app.Modules = []apphttp.Module{limitedModule{}}
	engine := New(app)

	assert.Equal(t, http.StatusNoContent, postLimited(engine, "198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, postLimited(engine, "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, postLimited(engine, "198.51.100.1"))
}

func TestInvalidTrustedProxiesFallBackToNone(t *testing.T) {
	app := newApp(nil)
	app.Config = testConfig{proxies: []string{"not-an-ip"}}
	app.Modules = []apphttp.Module{limitedModule{}}
	engine := New(app)

	assert.Equal(t, http.StatusNoContent, postLimited(engine, "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, postLimited(engine, "198.51.100.2"))
}
