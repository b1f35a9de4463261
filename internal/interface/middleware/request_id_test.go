package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})
	return engine
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	engine := newRequestIDRouter()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected a generated request id on the response")
	}
	if w.Body.String() != id {
		t.Fatalf("context id %q does not match response header %q", w.Body.String(), id)
	}
}

func TestRequestIDReusesCallerID(t *testing.T) {
	engine := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "upstream-42" {
		t.Fatalf("expected caller id to be reused, got %q", got)
	}
	if w.Body.String() != "upstream-42" {
		t.Fatalf("context id %q, want upstream-42", w.Body.String())
	}
}
