package controller_test

import (
	"linkify/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveCORS(t *testing.T, origins []string, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(method, "/v1/pages", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	controller.WithCORS(origins)(next).ServeHTTP(rec, req)

	return rec, called
}

func TestWithCORS_PreflightStopsHere(t *testing.T) {
	rec, called := serveCORS(t, nil, http.MethodOptions, "https://editor.example")

	require.False(t, called)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_AnyOrigin(t *testing.T) {
	rec, called := serveCORS(t, []string{"*"}, http.MethodGet, "https://editor.example")

	require.True(t, called)
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_ListedOrigins(t *testing.T) {
	origins := []string{"https://editor.example"}

	rec, called := serveCORS(t, origins, http.MethodGet, "https://EDITOR.example")
	require.True(t, called)
	require.Equal(t, "https://EDITOR.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))

	rec, called = serveCORS(t, origins, http.MethodGet, "https://evil.example")
	require.True(t, called)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
