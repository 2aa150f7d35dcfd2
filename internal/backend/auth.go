package backend

import (
	"context"
	"net/http"

	pkgerrors "PontoWeb/pkg/errors"
)

// LoginResult é o que o backend devolve num login aceito.
type LoginResult struct {
	Token  string
	UserID int64
	Nome   string
	Email  string
}

type loginResponse struct {
	Envelope
	Token     string `json:"token"`
	IDUsuario int64  `json:"idUsuario"`
	Usuario   *struct {
		ID    int64  `json:"id"`
		Nome  string `json:"nome"`
		Email string `json:"email"`
	} `json:"usuario"`
}

// Login autentica as credenciais no backend. Credencial recusada chega sem
// token no corpo e vira InvalidCredentials, nunca um erro de transporte.
func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "senha": senha}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login/realizarLogin", "", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, pkgerrors.InvalidCredentials.WithMessage(resp.Mensagem)
	}

	result := &LoginResult{Token: resp.Token, UserID: resp.IDUsuario}
	if resp.Usuario != nil {
		result.Nome = resp.Usuario.Nome
		result.Email = resp.Usuario.Email
	}
	return result, nil
}

// RecoverPassword pede o envio do código de recuperação por e-mail.
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}

	var resp Envelope
	if err := c.do(ctx, http.MethodPost, "/api/login/RecuperarSenha", "", payload, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp)
	}
	return nil
}

// ValidateRecoveryCode confere o código enviado por e-mail.
func (c *Client) ValidateRecoveryCode(ctx context.Context, email, codigo string) error {
	payload := map[string]string{"email": email, "codigo": codigo}

	var resp Envelope
	if err := c.do(ctx, http.MethodPost, "/api/login/ValidaCodigoRecuperacao", "", payload, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return pkgerrors.RecoveryCodeInvalid.WithMessage(resp.Mensagem)
	}
	return nil
}

// ChangePassword define a nova senha após validação do código.
func (c *Client) ChangePassword(ctx context.Context, email, senha string) error {
	payload := map[string]string{"email": email, "senha": senha}

	var resp Envelope
	if err := c.do(ctx, http.MethodPost, "/api/login/AlteraSenhaLogin", "", payload, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp)
	}
	return nil
}
