package dto

import "PontoWeb/internal/model"

// ========== DTOs de cargo ==========

type CargoRequest struct {
	IDCargo   int64  `json:"idCargo"`
	NomeCargo string `json:"nomeCargo" binding:"required"`
	Salario   string `json:"salario"`
	IndAtivo  int    `json:"indAtivo"`
}

func (r CargoRequest) ToModel() model.Cargo {
	return model.Cargo{
		IDCargo:   r.IDCargo,
		NomeCargo: r.NomeCargo,
		Salario:   r.Salario,
		IndAtivo:  r.IndAtivo,
	}
}

type CargoListResponse struct {
	Cargos []model.Cargo `json:"cargos"`
}
