package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"linkify/internal/api"
	"linkify/internal/api/handler/v1handler"
	"linkify/internal/pages"
	assetsmemory "linkify/pkg/assets/memory"
	"linkify/pkg/logger"
	"linkify/pkg/storage/memory"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "error")
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T, enablePprof bool) http.Handler {
	t.Helper()

	store := assetsmemory.New()
	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Pages:  pages.New(memory.New(), store, pages.Options{CDNDomain: "cdn.example.com"}),
		Assets: store,
	}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		Addr:              ":0",
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		EnablePprof:       enablePprof,
		Registerer:        prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return srv.Handler
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestNewServer_RequiresPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		Registerer:        prometheus.NewRegistry(),
	})
	require.Error(t, err)
}

func TestNewServer_Routes(t *testing.T) {
	h := newTestServer(t, false)

	rec := get(t, h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "openapi:"))

	rec = get(t, h, "/v1/pages/alice/availability")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"alice","available":true}`, rec.Body.String())

	rec = get(t, h, "/v1/pages/alice")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/v1/admin/pages")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/debug/pprof/")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer_Pprof(t *testing.T) {
	h := newTestServer(t, true)

	rec := get(t, h, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, rec.Code)
}
