package backend

import (
	"context"
	"fmt"
	"net/http"

	"PontoWeb/internal/model"
	pkgerrors "PontoWeb/pkg/errors"
)

type userResponse struct {
	Envelope
	Usuario  *model.User  `json:"usuario"`
	Usuarios []model.User `json:"usuarios"`
}

// GetUser busca um usuário pelo id.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (*model.User, error) {
	var resp userResponse
	path := fmt.Sprintf("/api/Usuario/%d", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso || resp.Usuario == nil {
		return nil, pkgerrors.UserNotFound.WithMessage(resp.Mensagem)
	}
	return resp.Usuario, nil
}

// ListUsers devolve todos os usuários cadastrados.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/Usuario/Listar", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Usuarios, nil
}

// CreateUser cadastra um usuário.
func (c *Client) CreateUser(ctx context.Context, token string, user model.User) (*model.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/api/Usuario/Inserir", token, user, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Usuario, nil
}

// UpdateUser atualiza o cadastro inteiro de um usuário.
func (c *Client) UpdateUser(ctx context.Context, token string, user model.User) (*model.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, "/api/Usuario/Atualizar", token, user, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Usuario, nil
}

// DeleteUser desativa um usuário (exclusão lógica, por isso o PUT).
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	var resp userResponse
	path := fmt.Sprintf("/api/Usuario/Deletar/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, nil, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp.Envelope)
	}
	return nil
}
