package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"PontoWeb/config"
)

// NominatimClient consulta o endpoint /reverse do Nominatim (OpenStreetMap),
// o mesmo serviço que o front antigo chamava direto do navegador.
type NominatimClient struct {
	baseURL  string
	language string
	http     *http.Client
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

func NewNominatimClient() (*NominatimClient, error) {
	cfg := config.Cfg

	base := strings.TrimRight(cfg.GeocodeBaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("geocode base URL is empty")
	}

	return &NominatimClient{
		baseURL:  base,
		language: cfg.GeocodeLanguage,
		http: &http.Client{
			Timeout: time.Duration(cfg.GeocodeTimeoutMS) * time.Millisecond,
		},
	}, nil
}

func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")
	q.Set("accept-language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", config.Cfg.ServiceName)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocode response: %w", err)
	}

	return body.DisplayName, nil
}

const earthRadiusMeters = 6371000

// Distance calcula a distância haversine em metros entre duas coordenadas.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	latRad1 := lat1 * math.Pi / 180
	lonRad1 := lon1 * math.Pi / 180
	latRad2 := lat2 * math.Pi / 180
	lonRad2 := lon2 * math.Pi / 180

	diffLat := latRad2 - latRad1
	diffLon := lonRad2 - lonRad1

	a := math.Sin(diffLat/2)*math.Sin(diffLat/2) +
		math.Cos(latRad1)*math.Cos(latRad2)*
			math.Sin(diffLon/2)*math.Sin(diffLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius informa se o ponto está dentro do raio (em metros) ao redor
// do centro. Usado pela cerca virtual opcional do registro de ponto.
func WithinRadius(lat, lon, centerLat, centerLon, radiusMeters float64) bool {
	return Distance(lat, lon, centerLat, centerLon) <= radiusMeters
}
