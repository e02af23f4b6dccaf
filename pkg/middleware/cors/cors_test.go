package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, origins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(New(origins))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestEmptyAllowlistEchoesAnyOrigin(t *testing.T) {
	w := serve(t, nil, http.MethodGet, "https://admin.example.com")
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestConfiguredOriginIsEchoed(t *testing.T) {
	w := serve(t, []string{"https://admin.voyago.io/"}, http.MethodGet, "https://admin.voyago.io")
	assert.Equal(t, "https://admin.voyago.io", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownOriginGetsNoAllowHeader(t *testing.T) {
	w := serve(t, []string{"https://admin.voyago.io"}, http.MethodGet, "https://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPreflightShortCircuits(t *testing.T) {
	w := serve(t, nil, http.MethodOptions, "https://admin.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRequestIDHeaderIsExposed(t *testing.T) {
	w := serve(t, nil, http.MethodGet, "https://admin.example.com")
	assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
}
