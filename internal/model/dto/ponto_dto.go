package dto

import "PontoWeb/internal/model"

// ========== DTOs de registro de ponto ==========

// TimeEntry é o par hora/localização exibido no modal de ajuste.
type TimeEntry struct {
	Time     string `json:"time"`
	Location string `json:"location"`
}

// PunchRequest registra um ponto agora; as coordenadas são opcionais e
// servem apenas para o texto de localização.
type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// PunchResponse confirma o registro feito.
type PunchResponse struct {
	Tipo        int    `json:"tipo"`
	TipoLabel   string `json:"tipoLabel"`
	Hora        string `json:"hora"`
	Localizacao string `json:"localizacao"`
}

// TodayPunch é um ponto do dia corrente com o atraso em relação à jornada.
type TodayPunch struct {
	Tipo          int    `json:"tipo"`
	TipoLabel     string `json:"tipoLabel"`
	Hora          string `json:"hora"`
	AtrasoMinutos int    `json:"atrasoMinutos"`
}

// TodayResponse alimenta a tela inicial: pontos já batidos e o próximo
// tipo esperado (nulo quando o dia está completo).
type TodayResponse struct {
	Pontos      []TodayPunch `json:"pontos"`
	ProximoTipo *int         `json:"proximoTipo"`
	Saudacao    string       `json:"saudacao"`
}

// HistoryResponse é a tabela de histórico, um resumo por dia.
type HistoryResponse struct {
	Registros []model.DaySummary `json:"registros"`
}

// AdjustPrefillResponse pré-preenche o modal de ajuste: horários para o
// formulário e, separadamente, os ids dos registros brutos de cada slot.
type AdjustPrefillResponse struct {
	Horarios SlotTimes `json:"horarios"`
	IDs      SlotIDs   `json:"ids"`
}

// SlotTimes são os quatro slots canônicos como pares hora/localização.
type SlotTimes struct {
	Entrada      TimeEntry `json:"entrada"`
	InicioAlmoco TimeEntry `json:"inicioAlmoco"`
	FimAlmoco    TimeEntry `json:"fimAlmoco"`
	Saida        TimeEntry `json:"saida"`
}

// SlotIDs são os ids dos registros brutos por slot; zero indica slot vazio.
type SlotIDs struct {
	Entrada      int64 `json:"entrada"`
	InicioAlmoco int64 `json:"inicioAlmoco"`
	FimAlmoco    int64 `json:"fimAlmoco"`
	Saida        int64 `json:"saida"`
}

// AjusteRequest submete uma solicitação de alteração para o dia informado.
type AjusteRequest struct {
	Dia          string    `json:"dia" binding:"required"` // "qui, 20/03"
	EntradaSaida string    `json:"entradaSaida"`           // "08:00 - 17:00"
	Entrada      TimeEntry `json:"entrada"`
	InicioAlmoco TimeEntry `json:"inicioAlmoco"`
	FimAlmoco    TimeEntry `json:"fimAlmoco"`
	Saida        TimeEntry `json:"saida"`
	Motivo       string    `json:"motivo"`
}

// MonthBalance é um ponto do gráfico de saldo de horas.
type MonthBalance struct {
	Mes          string `json:"mes"` // "2026-03"
	SaldoMinutos int    `json:"saldoMinutos"`
	Saldo        string `json:"saldo"`
}

// MonthPunctuality é um ponto do gráfico de pontualidade.
type MonthPunctuality struct {
	Mes           string `json:"mes"`
	Atrasos       int    `json:"atrasos"`
	Adiantamentos int    `json:"adiantamentos"`
}

// MonthlySummaryResponse alimenta os gráficos da tela inicial.
type MonthlySummaryResponse struct {
	Horas        []MonthBalance     `json:"horas"`
	Pontualidade []MonthPunctuality `json:"pontualidade"`
}
