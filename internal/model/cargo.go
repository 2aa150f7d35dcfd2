package model

// Cargo é a entidade de cargo/função, propriedade do backend.
type Cargo struct {
	IDCargo   int64  `json:"idCargo"`
	NomeCargo string `json:"nomeCargo"`
	Salario   string `json:"salario"`
	IndAtivo  int    `json:"indAtivo"`
}

func (c Cargo) Active() bool {
	return c.IndAtivo != 0
}
