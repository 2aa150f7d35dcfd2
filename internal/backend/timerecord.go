package backend

import (
	"context"
	"fmt"
	"net/http"

	"PontoWeb/internal/model"
)

type punchListResponse struct {
	Envelope
	Registros []model.TimePunch `json:"registros"`
}

// PunchInsert é o payload de criação de registro; o backend usa nomes de
// campo diferentes dos que devolve na listagem.
type PunchInsert struct {
	IDUsuario           int64  `json:"idUsuario"`
	HoraRegistro        string `json:"horaRegistro"`
	DataRegistro        string `json:"dataRegistro"`
	IDTipoRegistroPonto int    `json:"idTipoRegistroPonto"`
}

// AjusteSlot é um slot do formulário de ajuste: o registro alvo (zero para
// slot vazio) e o horário solicitado.
type AjusteSlot struct {
	IDRegistro int64  `json:"idRegistro"`
	Horario    string `json:"horario"`
}

// AjustePayload é a solicitação de alteração enviada ao backend.
type AjustePayload struct {
	IDSolicitacao int64      `json:"idSolicitacao"`
	IDUsuario     int64      `json:"idUsuario"`
	Dia           string     `json:"dia"`
	Entrada       AjusteSlot `json:"entrada"`
	InicioAlmoco  AjusteSlot `json:"inicioAlmoco"`
	FimAlmoco     AjusteSlot `json:"fimAlmoco"`
	Saida         AjusteSlot `json:"saida"`
	Motivo        string     `json:"motivo"`
}

// InsertPunch registra um ponto.
func (c *Client) InsertPunch(ctx context.Context, token string, punch PunchInsert) error {
	var resp Envelope
	if err := c.do(ctx, http.MethodPost, "/api/RegistroPonto/Inserir", token, punch, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp)
	}
	return nil
}

// ListPunches devolve todos os registros de ponto.
func (c *Client) ListPunches(ctx context.Context, token string) ([]model.TimePunch, error) {
	var resp punchListResponse
	if err := c.do(ctx, http.MethodGet, "/api/RegistroPonto/Listar", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Registros, nil
}

// ListUserPunches devolve os registros de um usuário.
func (c *Client) ListUserPunches(ctx context.Context, token string, userID int64) ([]model.TimePunch, error) {
	var resp punchListResponse
	path := fmt.Sprintf("/api/RegistroPonto/ObterRegistrosUsuario?idUsuario=%d", userID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Sucesso {
		return nil, rejected(resp.Envelope)
	}
	return resp.Registros, nil
}

// CreateAjuste submete uma solicitação de alteração de ponto.
func (c *Client) CreateAjuste(ctx context.Context, token string, payload AjustePayload) error {
	var resp Envelope
	if err := c.do(ctx, http.MethodPost, "/api/RegistroPonto/CriarSolicitacaoAlteracao", token, payload, &resp); err != nil {
		return err
	}
	if !resp.Sucesso {
		return rejected(resp)
	}
	return nil
}
