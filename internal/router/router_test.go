package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/envelope-zero/budget-helpers/internal/config"
	"github.com/envelope-zero/budget-helpers/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeResponse decodes an HTTP response into a target struct.
func decodeResponse(t *testing.T, r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

func testConfig(t *testing.T) config.Config {
	u, err := url.Parse("https://example.com/api")
	require.Nil(t, err)

	return config.Config{
		APIURL:  u,
		Port:    8080,
		GinMode: gin.TestMode,
	}
}

// serve configures a router for cfg and serves one request with it.
func serve(t *testing.T, cfg config.Config, method, path string) *httptest.ResponseRecorder {
	r, teardown, err := router.Config(cfg)
	require.Nil(t, err, "Error on router initialization")
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	return w
}

func TestConfigTwice(t *testing.T) {
	cfg := testConfig(t)

	_, teardown, err := router.Config(cfg)
	require.Nil(t, err)

	_, _, err = router.Config(cfg)
	assert.NotNil(t, err, "metrics must not be registered twice")

	teardown()
}

func TestPprofOff(t *testing.T) {
	cfg := testConfig(t)

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err)
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	for _, r := range r.Routes() {
		assert.NotContains(t, r.Path, "pprof", "pprof routes are registered erroneously! Route: %s", r)
	}
}

func TestPprofOn(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnablePprof = true

	w := serve(t, cfg, http.MethodGet, "/debug/pprof/cmdline")
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestCorsSetting checks that setting of CORS works.
func TestCorsSetting(t *testing.T) {
	cfg := testConfig(t)
	cfg.CORSAllowOrigins = []string{"http://localhost:3000", "https://example.com"}

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err)
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	w := serve(t, testConfig(t), http.MethodDelete, "/version")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "this HTTP method is not allowed")
}

func TestNotFound(t *testing.T) {
	w := serve(t, testConfig(t), http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetrics(t *testing.T) {
	cfg := testConfig(t)

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err)
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/selector/next?month=May&year=2024", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `requests_total{code="200",method="GET",url="/v1/selector/next"}`), body)
	assert.Contains(t, body, `selector_navigations_total{action="next"}`)
}

func TestDocs(t *testing.T) {
	w := serve(t, testConfig(t), http.MethodGet, "/docs/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/v1/selector")
}

func TestGetRoot(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/", func(_ *gin.Context) {
		router.GetRoot(c)
	})

	// Test contexts cannot be injected any middleware, therefore
	// this only tests the path, not the host
	l := router.RootResponse{
		Links: router.RootLinks{
			Docs:    "/docs/index.html",
			Healthz: "/healthz",
			Version: "/version",
			Metrics: "/metrics",
			V1:      "/v1",
		},
	}

	var lr router.RootResponse

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/", nil)
	r.ServeHTTP(w, c.Request)

	decodeResponse(t, w, &lr)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, l, lr)
}

func TestGetRootWithURL(t *testing.T) {
	w := serve(t, testConfig(t), http.MethodGet, "/")

	var lr router.RootResponse
	decodeResponse(t, w, &lr)
	assert.Equal(t, "https://example.com/api/v1", lr.Links.V1)
}

func TestGetVersion(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/version", func(_ *gin.Context) {
		router.GetVersion(c)
	})

	l := router.VersionResponse{
		Data: router.VersionObject{
			Version: "0.0.0",
		},
	}

	var lr router.VersionResponse

	c.Request, _ = http.NewRequest(http.MethodGet, "https://example.com/version", nil)
	r.ServeHTTP(w, c.Request)

	decodeResponse(t, w, &lr)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, l, lr)
	assert.Equal(t, "0.0.0", router.Version())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		f        func(*gin.Context)
		expected string
	}{
		{"/", router.OptionsRoot, "OPTIONS, GET"},
		{"/version", router.OptionsVersion, "OPTIONS, GET"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.OPTIONS(tt.path, func(_ *gin.Context) {
				tt.f(c)
			})

			url := fmt.Sprintf("http://example.com%s", tt.path)
			c.Request, _ = http.NewRequest(http.MethodOptions, url, nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("allow"))
		})
	}
}
