package dto

import "PontoWeb/internal/model"

// ========== DTOs de usuário ==========

// UserRequest cobre criação e atualização; o backend trata a operação como
// gravação integral da entidade.
type UserRequest struct {
	IDUsuario      int64  `json:"idUsuario"`
	Nome           string `json:"nome" binding:"required"`
	DataNascimento string `json:"dataNascimento"`
	Senha          string `json:"senha"`
	Email          string `json:"email" binding:"required"`
	Telefone       int64  `json:"telefone"`
	IDCargo        int64  `json:"idCargo"`
	IDJornada      int64  `json:"idJornada"`
	IndAtivo       int    `json:"indAtivo"`
}

// ToModel converte o formulário na entidade enviada ao backend.
func (r UserRequest) ToModel() model.User {
	return model.User{
		IDUsuario:      r.IDUsuario,
		Nome:           r.Nome,
		DataNascimento: r.DataNascimento,
		Senha:          r.Senha,
		Email:          r.Email,
		Telefone:       r.Telefone,
		IDCargo:        r.IDCargo,
		IDJornada:      r.IDJornada,
		IndAtivo:       r.IndAtivo,
	}
}

// UserListResponse é a lista do dashboard administrativo.
type UserListResponse struct {
	Usuarios []model.User `json:"usuarios"`
}

// ProfileResponse devolve a projeção reduzida do perfil.
type ProfileResponse struct {
	Profile model.Profile `json:"profile"`
}
