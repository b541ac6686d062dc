package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/pkg/claim/service/mocks"
	"github.com/chainsafe/claim-registry/pkg/config"
)

func TestNewRouter_Health(t *testing.T) {
	router := NewRouter(mocks.NewService(t), &config.Config{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("expected body %q, got %q", "OK", rec.Body.String())
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	cfg := &config.Config{Monitoring: config.MonitoringConfig{Enabled: true}}
	router := NewRouter(mocks.NewService(t), cfg, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "claim_registry_active_claims") {
		t.Fatal("expected claim registry metrics to be exposed")
	}
}

func TestNewRouter_MetricsDisabled(t *testing.T) {
	router := NewRouter(mocks.NewService(t), &config.Config{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestServer_Run_NilConfig(t *testing.T) {
	if err := NewServer(nil).Run(); err == nil {
		t.Fatal("expected error for nil config")
	}
}
