package geocode

import (
	"context"
	"math"
	"os"
	"testing"

	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// Init com base URL vazia deve falhar sem deixar um *NominatimClient nulo
// dentro da interface: Resolve degrada para o placeholder, nunca panica.
func TestResolveFallsBackWhenInitFails(t *testing.T) {
	config.Cfg.GeocodeProvider = "nominatim"
	config.Cfg.GeocodeBaseURL = ""

	if err := Init(); err == nil {
		t.Fatal("Init accepted an empty geocode base URL")
	}
	if geoClient != nil {
		t.Fatalf("geoClient = %#v after failed Init, want nil", geoClient)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Resolve panicked after failed Init: %v", r)
		}
	}()
	if got := Resolve(context.Background(), -23.55, -46.63); got != FallbackLocation {
		t.Fatalf("Resolve = %q, want %q", got, FallbackLocation)
	}
}

func TestResolveDegradesOnClientFailure(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext = true
	geoClient = mock
	defer func() { geoClient = nil }()

	if got := Resolve(context.Background(), -23.55, -46.63); got != FallbackLocation {
		t.Fatalf("Resolve = %q, want %q", got, FallbackLocation)
	}
	if got := Resolve(context.Background(), -23.55, -46.63); got != "Escritório" {
		t.Fatalf("Resolve = %q, want %q", got, "Escritório")
	}
	if len(mock.Calls) != 2 {
		t.Fatalf("mock received %d calls, want 2", len(mock.Calls))
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(-23.55, -46.63, -23.55, -46.63); got != 0 {
		t.Fatalf("Distance between identical points = %f, want 0", got)
	}

	// um grau de latitude são ~111,19 km
	got := Distance(0, 0, 1, 0)
	if math.Abs(got-111195) > 100 {
		t.Fatalf("Distance(0,0 -> 1,0) = %f, want ~111195", got)
	}
}

func TestWithinRadius(t *testing.T) {
	const officeLat, officeLon = -23.55, -46.63

	// ~111 m ao norte do escritório
	if !WithinRadius(officeLat+0.001, officeLon, officeLat, officeLon, 200) {
		t.Fatal("point ~111m away reported outside a 200m radius")
	}
	// ~333 m ao norte
	if WithinRadius(officeLat+0.003, officeLon, officeLat, officeLon, 200) {
		t.Fatal("point ~333m away reported inside a 200m radius")
	}
}
