package ponto

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	"PontoWeb/utils"
)

// Schedule é a jornada padrão contra a qual atrasos e saldos são calculados.
// Os horários vêm da configuração, já validados no boot.
type Schedule struct {
	Entrada      string
	InicioAlmoco string
	FimAlmoco    string
	Saida        string
}

// ClockFor devolve o horário previsto da jornada para o tipo dado.
func (s Schedule) ClockFor(t model.PunchType) string {
	switch t {
	case model.PunchEntrada:
		return s.Entrada
	case model.PunchInicioAlmoco:
		return s.InicioAlmoco
	case model.PunchFimAlmoco:
		return s.FimAlmoco
	case model.PunchSaida:
		return s.Saida
	}
	return ""
}

// WorkedMinutes é a carga diária prevista: expediente menos almoço.
func (s Schedule) WorkedMinutes() int {
	entrada := clockMinutes(s.Entrada)
	inicio := clockMinutes(s.InicioAlmoco)
	fim := clockMinutes(s.FimAlmoco)
	saida := clockMinutes(s.Saida)
	return (saida - entrada) - (fim - inicio)
}

func clockMinutes(c string) int {
	m, _ := utils.ClockMinutes(c)
	return m
}

var weekdayAbbrev = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// DayLabel monta o rótulo de dia exibido nas tabelas, ex.: "qui, 20/03".
func DayLabel(date time.Time) string {
	return fmt.Sprintf("%s, %02d/%02d", weekdayAbbrev[date.Weekday()], date.Day(), int(date.Month()))
}

// NextExpected devolve o próximo tipo de ponto do dia, na ordem canônica;
// nil quando os quatro já foram batidos. Marcações fora da faixa são
// ignoradas.
func NextExpected(todays []model.TimePunch) *model.PunchType {
	marked := make(map[model.PunchType]bool, len(todays))
	for _, p := range todays {
		if p.Type().Valid() {
			marked[p.Type()] = true
		}
	}
	for t := model.PunchEntrada; t <= model.PunchSaida; t++ {
		if !marked[t] {
			next := t
			return &next
		}
	}
	return nil
}

// FilterDay seleciona os registros do usuário na data do instante dado.
func FilterDay(punches []model.TimePunch, userID int64, day time.Time) []model.TimePunch {
	date := day.Format("2006-01-02")
	var out []model.TimePunch
	for _, p := range punches {
		if p.IDUsuario != userID || p.DataRegistro == "" {
			continue
		}
		if strings.SplitN(p.DataRegistro, "T", 2)[0] == date {
			out = append(out, p)
		}
	}
	return out
}

// DelayMinutes devolve o atraso de um registro frente à jornada; zero quando
// em ponto ou adiantado.
func DelayMinutes(t model.PunchType, at time.Time, sched Schedule) int {
	expected, err := utils.ClockMinutes(sched.ClockFor(t))
	if err != nil {
		return 0
	}
	d := utils.MinuteOfDay(at) - expected
	if d < 0 {
		return 0
	}
	return d
}

type dayGroup struct {
	date    string // "2026-03-20"
	punches []model.TimePunch
}

func groupByDate(punches []model.TimePunch) []dayGroup {
	byDate := make(map[string][]model.TimePunch)
	for _, p := range punches {
		if p.DataRegistro == "" {
			continue
		}
		date := strings.SplitN(p.DataRegistro, "T", 2)[0]
		byDate[date] = append(byDate[date], p)
	}
	out := make([]dayGroup, 0, len(byDate))
	for date, group := range byDate {
		out = append(out, dayGroup{date: date, punches: group})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date < out[j].date })
	return out
}

// reconcileGroup deriva o rótulo, o intervalo entrada/saída exibido e a
// reconciliação de um grupo diário. ok é falso quando nenhum registro do
// grupo tem data ou hora interpretáveis.
func reconcileGroup(g dayGroup, now time.Time) (label, entradaSaida string, rec Reconciliation, ok bool) {
	day, err := time.Parse("2006-01-02", g.date)
	if err != nil {
		return "", "", Reconciliation{}, false
	}

	var times []time.Time
	for _, p := range g.punches {
		if at, parsed := ParsePunchTime(p.HoraRegistro); parsed {
			times = append(times, at)
		}
	}
	if len(times) == 0 {
		return "", "", Reconciliation{}, false
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	label = DayLabel(day)
	entradaSaida = utils.FormatClock(times[0]) + " - " + utils.FormatClock(times[len(times)-1])
	return label, entradaSaida, ReconcileAt(label, entradaSaida, g.punches, now), true
}

// workedMinutes calcula os minutos trabalhados de um dia reconciliado:
// entrada até saída, descontado o almoço quando os dois slots existem.
// ok é falso para dias sem as duas pontas.
func workedMinutes(rec Reconciliation) (int, bool) {
	if rec.Entrada.Clock == "" || rec.Saida.Clock == "" {
		return 0, false
	}
	start, err := utils.ClockMinutes(rec.Entrada.Clock)
	if err != nil {
		return 0, false
	}
	end, err := utils.ClockMinutes(rec.Saida.Clock)
	if err != nil {
		return 0, false
	}
	total := end - start
	if rec.InicioAlmoco.Clock != "" && rec.FimAlmoco.Clock != "" {
		ls, errS := utils.ClockMinutes(rec.InicioAlmoco.Clock)
		le, errE := utils.ClockMinutes(rec.FimAlmoco.Clock)
		if errS == nil && errE == nil {
			total -= le - ls
		}
	}
	return total, true
}

func signedMinutes(min int) string {
	if min < 0 {
		return "-" + utils.FormatMinutes(-min)
	}
	return utils.FormatMinutes(min)
}

// BuildDaySummaries monta as linhas da tabela de histórico, uma por dia com
// registros, do mais recente para o mais antigo. Dias sem as duas pontas
// contam como carga inteira faltante.
func BuildDaySummaries(punches []model.TimePunch, sched Schedule, now time.Time) []model.DaySummary {
	groups := groupByDate(punches)
	expected := sched.WorkedMinutes()

	out := make([]model.DaySummary, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		label, entradaSaida, rec, ok := reconcileGroup(groups[i], now)
		if !ok {
			continue
		}

		summary := model.DaySummary{Data: label, EntradaSaida: entradaSaida}
		if worked, complete := workedMinutes(rec); complete {
			diff := worked - expected
			if diff >= 0 {
				summary.HorasExtras = utils.FormatMinutes(diff)
				summary.Faltantes = "00:00"
			} else {
				summary.HorasExtras = "00:00"
				summary.Faltantes = utils.FormatMinutes(-diff)
			}
			summary.Saldo = signedMinutes(diff)
		} else {
			summary.HorasExtras = "00:00"
			summary.Faltantes = utils.FormatMinutes(expected)
			summary.Saldo = signedMinutes(-expected)
		}
		out = append(out, summary)
	}
	return out
}

// MonthlySummary agrega saldo de horas e pontualidade por mês a partir do
// histórico completo do usuário, alimentando os gráficos da tela inicial.
func MonthlySummary(punches []model.TimePunch, sched Schedule, now time.Time) dto.MonthlySummaryResponse {
	type monthAgg struct {
		saldo         int
		atrasos       int
		adiantamentos int
	}

	expected := sched.WorkedMinutes()
	expectedEntrada := clockMinutes(sched.Entrada)

	months := make(map[string]*monthAgg)
	for _, g := range groupByDate(punches) {
		_, _, rec, ok := reconcileGroup(g, now)
		if !ok {
			continue
		}

		key := g.date[:7] // "2026-03"
		agg := months[key]
		if agg == nil {
			agg = &monthAgg{}
			months[key] = agg
		}

		if worked, complete := workedMinutes(rec); complete {
			agg.saldo += worked - expected
		}
		if rec.Entrada.Clock != "" {
			if got, err := utils.ClockMinutes(rec.Entrada.Clock); err == nil {
				switch {
				case got > expectedEntrada:
					agg.atrasos++
				case got < expectedEntrada:
					agg.adiantamentos++
				}
			}
		}
	}

	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resp := dto.MonthlySummaryResponse{
		Horas:        make([]dto.MonthBalance, 0, len(keys)),
		Pontualidade: make([]dto.MonthPunctuality, 0, len(keys)),
	}
	for _, key := range keys {
		agg := months[key]
		resp.Horas = append(resp.Horas, dto.MonthBalance{
			Mes:          key,
			SaldoMinutos: agg.saldo,
			Saldo:        signedMinutes(agg.saldo),
		})
		resp.Pontualidade = append(resp.Pontualidade, dto.MonthPunctuality{
			Mes:           key,
			Atrasos:       agg.atrasos,
			Adiantamentos: agg.adiantamentos,
		})
	}
	return resp
}
