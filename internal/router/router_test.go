package router

import (
	"os"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/internal/middleware"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/token"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()

	config.Cfg.JWTSecret = "router-test-secret"
	config.Cfg.SessionSecret = "router-test-session"
	config.Cfg.CSRFSecret = "router-test-csrf"

	if err := token.Init(); err != nil {
		panic(err)
	}
	// meter global é noop sem provider; os instrumentos valem para testes
	if err := middleware.InitMetrics(otel.Meter("router-test")); err != nil {
		panic(err)
	}
	if err := middleware.Init(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func testEngine() *server.Hertz {
	h := server.Default()
	Register(h)
	return h
}

// Rotas autenticadas sem token devem parar no middleware de JWT com 401,
// antes de tocar Redis ou backend. 404 indicaria rota não registrada.
func TestAuthenticatedRoutesAreRegistered(t *testing.T) {
	h := testEngine()

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/v1/me/profile"},
		{"PUT", "/v1/me/profile"},
		{"GET", "/v1/me/ponto/today"},
		{"POST", "/v1/me/ponto/punch"},
		{"GET", "/v1/me/ponto/history"},
		{"GET", "/v1/me/ponto/adjust-prefill"},
		{"POST", "/v1/me/ponto/ajuste"},
		{"GET", "/v1/me/ponto/summary"},
		{"GET", "/v1/admin/users"},
		{"PUT", "/v1/admin/users/7"},
		{"DELETE", "/v1/admin/cargos/7"},
	}

	for _, r := range routes {
		w := ut.PerformRequest(h.Engine, r.method, r.path, nil)
		resp := w.Result()
		if resp.StatusCode() != 401 {
			t.Fatalf("%s %s = %d, want 401 (unauthenticated)", r.method, r.path, resp.StatusCode())
		}
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	h := testEngine()

	w := ut.PerformRequest(h.Engine, "PUT", "/v1/me/nonexistent", nil)
	if code := w.Result().StatusCode(); code != 404 {
		t.Fatalf("PUT /v1/me/nonexistent = %d, want 404", code)
	}
}
