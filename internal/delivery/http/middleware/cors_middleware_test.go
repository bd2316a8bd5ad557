package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serveCORS(origins []string, method, origin string) (*httptest.ResponseRecorder, bool) {
	called := false
	handler := NewCORSMiddleware(origins).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/v1/list-all-terms", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, called
}

func TestCORS_Wildcard(t *testing.T) {
	rec, _ := serveCORS(nil, http.MethodGet, "https://clinic.example")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, RequestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_AllowListedOrigin(t *testing.T) {
	rec, _ := serveCORS([]string{"https://clinic.example"}, http.MethodGet, "https://clinic.example")

	assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	rec, _ := serveCORS([]string{"https://clinic.example"}, http.MethodGet, "https://evil.example")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightStopsChain(t *testing.T) {
	rec, called := serveCORS(nil, http.MethodOptions, "https://clinic.example")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
}
