package backend

import (
	"context"
	"fmt"
	"net/http"

	"PontoWeb/internal/model"
	pkgerrors "PontoWeb/pkg/errors"
)

type cargoResponse struct {
	Envelope
	Cargo  *model.Cargo  `json:"cargo"`
	Cargos []model.Cargo `json:"cargos"`
}

// CreateCargo cadastra um cargo.
func (c *Client) CreateCargo(ctx context.Context, token string, cargo model.Cargo) (*model.Cargo, error) {
	var resp cargoResponse
	if err := c.do(ctx, http.MethodPost, "/api/Cargo/Inserir", token, cargo, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Cargo, nil
}

// ListCargos devolve todos os cargos.
func (c *Client) ListCargos(ctx context.Context, token string) ([]model.Cargo, error) {
	var resp cargoResponse
	if err := c.do(ctx, http.MethodGet, "/api/Cargo/Listar", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Cargos, nil
}

// GetCargo busca um cargo pelo id.
func (c *Client) GetCargo(ctx context.Context, token string, id int64) (*model.Cargo, error) {
	var resp cargoResponse
	path := fmt.Sprintf("/api/Cargo/Buscar/%d", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso || resp.Cargo == nil {
		return nil, pkgerrors.CargoNotFound.WithMessage(resp.Mensagem)
	}
	return resp.Cargo, nil
}

// UpdateCargo atualiza um cargo.
func (c *Client) UpdateCargo(ctx context.Context, token string, cargo model.Cargo) (*model.Cargo, error) {
	var resp cargoResponse
	if err := c.do(ctx, http.MethodPut, "/api/Cargo/Atualizar", token, cargo, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Cargo, nil
}

// DeleteCargo remove um cargo.
func (c *Client) DeleteCargo(ctx context.Context, token string, id int64) error {
	var resp cargoResponse
	path := fmt.Sprintf("/api/Cargo/Deletar/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp.Envelope)
	}
	return nil
}
