package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
)

// Client fala com a API REST remota do ponto. Todo estado durável
// (usuários, cargos, registros) vive lá; aqui não há retry nem
// circuit breaking, falha transitória exige nova ação do usuário.
type Client struct {
	http    *http.Client
	baseURL string
}

var (
	defaultClient *Client
	clientOnce    sync.Once
	initBaseURL   string
	initTimeout   time.Duration
)

// Init registra os parâmetros do cliente compartilhado. Deve ser chamado no
// boot, antes do primeiro Get.
func Init(baseURL string, timeout time.Duration) {
	initBaseURL = baseURL
	initTimeout = timeout
}

// Get devolve o cliente compartilhado.
func Get() *Client {
	clientOnce.Do(func() {
		if initBaseURL == "" {
			panic("backend client not initialized, call backend.Init first")
		}
		defaultClient = New(initBaseURL, initTimeout)
	})
	return defaultClient
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Envelope é o cabeçalho uniforme das respostas do backend. Os structs de
// resposta de cada chamada o embutem ao lado do campo da entidade.
type Envelope struct {
	Sucesso  bool   `json:"sucesso"`
	Mensagem string `json:"mensagem"`
}

// do executa uma chamada JSON contra o backend e decodifica a resposta em
// out. Erros de transporte viram BackendUnavailable; corpo indecifrável em
// resposta de erro vira BackendRejected sem mensagem.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return pkgerrors.BackendUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.BackendUnavailable
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			logger.Logger.Warn("backend response is not valid JSON",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
			)
			if resp.StatusCode >= http.StatusBadRequest {
				return pkgerrors.BackendRejected
			}
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}

// rejected converte um envelope mal sucedido no erro de negócio
// correspondente, preservando a mensagem do backend quando houver.
func rejected(env Envelope) error {
	if env.Mensagem != "" {
		return pkgerrors.BackendRejected.WithMessage(env.Mensagem)
	}
	return pkgerrors.BackendRejected
}
