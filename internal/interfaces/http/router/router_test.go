package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func pong(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func serveRaw(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "/api", r.basePath)
	assert.Empty(t, r.registrars)
	assert.Empty(t, r.middleware)
}

func TestRouterWithBasePath(t *testing.T) {
	r := NewRouter(gin.New(), WithBasePath("/v2"))
	assert.Equal(t, "/v2", r.basePath)
}

func TestRouterRegister(t *testing.T) {
	r := NewRouter(gin.New())
	r.Register(NewDomainGroup("test", "/test")).Register(NewDomainGroup("other", "/other"))

	assert.Len(t, r.registrars, 2)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test")
	group.GET("/ping", pong)

	NewRouter(engine).Register(group).Setup()

	w := serveRaw(engine, http.MethodGet, "/api/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = serveRaw(engine, http.MethodGet, "/test/ping")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterWithMiddleware(t *testing.T) {
	engine := gin.New()
	var calls int
	counting := func(c *gin.Context) {
		calls++
		c.Next()
	}
	engine.GET("/outside", pong)

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", pong)
	NewRouter(engine, WithMiddleware(counting)).Register(group).Setup()

	serveRaw(engine, http.MethodGet, "/api/test/ping")
	serveRaw(engine, http.MethodGet, "/outside")

	assert.Equal(t, 1, calls)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		group := NewDomainGroup("products", "/products")
		assert.Equal(t, "products", group.Name())
		assert.Equal(t, "/products", group.Prefix())
	})

	t.Run("all methods", func(t *testing.T) {
		engine := gin.New()
		group := NewDomainGroup("test", "/test")
		group.GET("/r", pong).POST("/r", pong).PUT("/r", pong).DELETE("/r", pong)
		NewRouter(engine).Register(group).Setup()

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
			w := serveRaw(engine, method, "/api/test/r")
			assert.Equal(t, http.StatusOK, w.Code, method)
		}
	})

	t.Run("group middleware stays in the group", func(t *testing.T) {
		engine := gin.New()
		deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }

		closed := NewDomainGroup("closed", "/closed").Use(deny)
		closed.GET("/ping", pong)
		open := NewDomainGroup("open", "/open")
		open.GET("/ping", pong)
		NewRouter(engine).Register(closed).Register(open).Setup()

		assert.Equal(t, http.StatusForbidden, serveRaw(engine, http.MethodGet, "/api/closed/ping").Code)
		assert.Equal(t, http.StatusOK, serveRaw(engine, http.MethodGet, "/api/open/ping").Code)
	})

	t.Run("subgroups", func(t *testing.T) {
		engine := gin.New()
		group := NewDomainGroup("admin", "/admin")
		group.Group("reports", "/reports").GET("/daily", pong)
		NewRouter(engine).Register(group).Setup()

		w := serveRaw(engine, http.MethodGet, "/api/admin/reports/daily")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
