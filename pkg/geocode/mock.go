package geocode

import (
	"context"
	"errors"
	"sync"
)

type MockCall struct {
	Lat float64
	Lon float64
}

// MockClient implementa Client para testes e para o provedor "none".
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// Display é devolvido em toda chamada bem sucedida.
	Display string
	// FailNext faz a próxima chamada falhar e se desarma em seguida.
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls:   make([]MockCall, 0),
		Display: "Escritório",
	}
}

func (m *MockClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Lat: lat, Lon: lon})

	if m.FailNext {
		m.FailNext = false
		return "", errors.New("mock reverse geocode failure")
	}

	return m.Display, nil
}
