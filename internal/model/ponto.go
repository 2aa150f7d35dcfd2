package model

// Tipos canônicos de registro de ponto, na numeração do backend.
type PunchType int

const (
	PunchEntrada      PunchType = 1
	PunchInicioAlmoco PunchType = 2
	PunchFimAlmoco    PunchType = 3
	PunchSaida        PunchType = 4
)

var PunchTypeLabels = map[PunchType]string{
	PunchEntrada:      "Entrada",
	PunchInicioAlmoco: "Início Almoço",
	PunchFimAlmoco:    "Fim Almoço",
	PunchSaida:        "Saída",
}

// Valid informa se o tipo está na faixa canônica 1..4. O backend não garante
// a marcação correta, por isso a reconciliação não confia cegamente no campo.
func (t PunchType) Valid() bool {
	return t >= PunchEntrada && t <= PunchSaida
}

// TimePunch é o registro bruto como o backend devolve. HoraRegistro vem como
// datetime ISO-8601 e DataRegistro como date ISO-8601; nomes de campo JSON
// seguem o contrato do backend.
type TimePunch struct {
	IDUsuario           int64  `json:"id_Usuario"`
	HoraRegistro        string `json:"horaRegistro"`
	DataRegistro        string `json:"dataRegistro"`
	IDTipoRegistroPonto int    `json:"idTipoRegistroPonto"`
	IDRegistro          int64  `json:"idRegistro"`
}

// Type devolve o tipo nominal do registro.
func (p TimePunch) Type() PunchType {
	return PunchType(p.IDTipoRegistroPonto)
}

// DaySummary é a linha da tabela de histórico, derivada no cliente e nunca
// persistida; é reconstruída a cada busca.
type DaySummary struct {
	Data         string `json:"data"`         // "qui, 20/03"
	EntradaSaida string `json:"entradaSaida"` // "08:00 - 17:00"
	HorasExtras  string `json:"horasExtras"`
	Faltantes    string `json:"faltantes"`
	Saldo        string `json:"saldo"`
}
