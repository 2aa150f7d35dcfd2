package geocode

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/pkg/logger"
)

// FallbackLocation é exibido quando a geocodificação falha. A localização é
// apenas informativa: nunca é persistida nem validada.
const FallbackLocation = "Localização não disponível"

// Client resolve coordenadas em um endereço legível.
type Client interface {
	// ReverseGeocode devolve o endereço de exibição para o par lat/lon.
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

var (
	geoClient Client
	geoOnce   sync.Once
	geoErr    error
)

// Init inicializa o cliente de geocodificação conforme o provedor configurado.
// Falha deixa geoClient nulo; Resolve então degrada para o placeholder.
func Init() error {
	geoOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.GeocodeProvider {
		case "nominatim":
			// atribuição só em caso de sucesso: um *NominatimClient nulo
			// dentro da interface passaria na checagem de nil do Resolve
			client, err := NewNominatimClient()
			if err != nil {
				geoErr = err
			} else {
				geoClient = client
			}
		case "none":
			geoClient = NewMockClient()
		default:
			geoErr = fmt.Errorf("unsupported geocode provider: %s", cfg.GeocodeProvider)
		}

		if geoErr != nil {
			logger.Logger.Error("Failed to initialize geocode client", zap.Error(geoErr))
			return
		}

		logger.Logger.Info("Geocode client initialized",
			zap.String("provider", cfg.GeocodeProvider),
		)
	})

	return geoErr
}

// Resolve devolve o endereço de exibição, degradando para o placeholder em
// qualquer falha, inclusive quando o cliente nunca foi inicializado. Nunca
// retorna erro nem entra em pânico: a localização é só exibição.
func Resolve(ctx context.Context, lat, lon float64) string {
	if geoClient == nil {
		return FallbackLocation
	}

	display, err := geoClient.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		logger.Logger.Warn("Reverse geocode failed, using fallback",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err),
		)
		return FallbackLocation
	}

	if display == "" {
		return FallbackLocation
	}

	return display
}
