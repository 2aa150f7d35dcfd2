package ponto

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	"PontoWeb/utils"
)

// LocationPlaceholder preenche o campo de localização do formulário de
// ajuste; os registros brutos do backend não carregam localização.
const LocationPlaceholder = "Escritório"

// proximityWindowMinutes é a tolerância do filtro alternativo por horário,
// usado quando o campo de data do registro está ausente ou malformado.
const proximityWindowMinutes = 5

var dayLabelPattern = regexp.MustCompile(`(\d{2})/(\d{2})`)

var punchTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// SlotValue é o conteúdo de um slot reconciliado. Clock vazio e ID zero
// indicam slot sem registro correspondente.
type SlotValue struct {
	Clock string // "08:15"
	ID    int64
}

// Reconciliation é a estrutura de quatro slots canônicos produzida pela
// reconciliação de um dia. Resolved distingue um dia processado (mesmo que
// nenhum slot tenha sido preenchido) da entrada sentinela.
type Reconciliation struct {
	Resolved     bool
	Entrada      SlotValue
	InicioAlmoco SlotValue
	FimAlmoco    SlotValue
	Saida        SlotValue
}

type candidate struct {
	punch model.TimePunch
	at    time.Time
}

// Reconcile infere qual registro bruto ocupa cada slot canônico do dia
// indicado pelo rótulo (formato "qui, 20/03"). Ver ReconcileAt.
func Reconcile(dayLabel, entradaSaida string, punches []model.TimePunch) Reconciliation {
	return ReconcileAt(dayLabel, entradaSaida, punches, time.Now())
}

// ReconcileAt é a variante determinística de Reconcile: o ano do rótulo é
// resolvido contra now. O backend não garante a marcação de
// idTipoRegistroPonto, então a atribuição tem dois caminhos: quando o filtro
// exato por data encontrou registros e as marcações são confiáveis (todas na
// faixa 1..4 e crescentes na ordem temporal), cada registro vai para o slot
// nomeado pela própria marcação; caso contrário vale a heurística posicional
// por contagem. Nunca entra em pânico e nunca fabrica horários.
func ReconcileAt(dayLabel, entradaSaida string, punches []model.TimePunch, now time.Time) Reconciliation {
	if dayLabel == "" || len(punches) == 0 {
		return Reconciliation{}
	}

	target, ok := resolveDayDate(dayLabel, now)
	if !ok {
		return Reconciliation{}
	}

	candidates := filterByDate(punches, target)
	dateMatched := len(candidates) > 0

	entry, exit := splitEntradaSaida(entradaSaida)
	if !dateMatched {
		candidates = filterByProximity(punches, entry, exit)
	}

	rec := Reconciliation{Resolved: true}
	if len(candidates) == 0 {
		return rec
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].at.Before(candidates[j].at)
	})

	if dateMatched && tagsTrusted(candidates) {
		for _, c := range candidates {
			rec.assign(c.punch.Type(), c)
		}
		return rec
	}

	rec.assignPositional(candidates, entry, exit)
	return rec
}

// Times projeta os slots como pares hora/localização para pré-preencher o
// formulário de ajuste. No caminho sentinela a localização também fica vazia.
func (r Reconciliation) Times() dto.SlotTimes {
	if !r.Resolved {
		return dto.SlotTimes{}
	}
	entry := func(s SlotValue) dto.TimeEntry {
		return dto.TimeEntry{Time: s.Clock, Location: LocationPlaceholder}
	}
	return dto.SlotTimes{
		Entrada:      entry(r.Entrada),
		InicioAlmoco: entry(r.InicioAlmoco),
		FimAlmoco:    entry(r.FimAlmoco),
		Saida:        entry(r.Saida),
	}
}

// IDs projeta os ids brutos por slot, para endereçar as chamadas de
// atualização; zero marca slot vazio.
func (r Reconciliation) IDs() dto.SlotIDs {
	return dto.SlotIDs{
		Entrada:      r.Entrada.ID,
		InicioAlmoco: r.InicioAlmoco.ID,
		FimAlmoco:    r.FimAlmoco.ID,
		Saida:        r.Saida.ID,
	}
}

// resolveDayDate extrai DD/MM do rótulo e monta a data completa com o ano
// corrente. Limitação conhecida: rótulos de anos anteriores resolvem para o
// ano errado na virada do ano.
func resolveDayDate(label string, now time.Time) (string, bool) {
	m := dayLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%s-%s", now.Year(), m[2], m[1]), true
}

func splitEntradaSaida(label string) (entry, exit string) {
	parts := strings.SplitN(label, " - ", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// ParsePunchTime interpreta o datetime de horaRegistro, com ou sem zona.
func ParsePunchTime(s string) (time.Time, bool) {
	for _, layout := range punchTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// filterByDate seleciona os registros cuja parte de data bate exatamente com
// a data alvo. Registros sem data ou com hora ininterpretável são ignorados.
func filterByDate(punches []model.TimePunch, target string) []candidate {
	var out []candidate
	for _, p := range punches {
		if p.DataRegistro == "" {
			continue
		}
		if strings.SplitN(p.DataRegistro, "T", 2)[0] != target {
			continue
		}
		at, ok := ParsePunchTime(p.HoraRegistro)
		if !ok {
			continue
		}
		out = append(out, candidate{punch: p, at: at})
	}
	return out
}

// filterByProximity é a recuperação heurística quando o filtro por data não
// encontrou nada: aceita registros a até proximityWindowMinutes dos horários
// exibidos de entrada ou saída, ou estritamente entre os dois (candidatos a
// almoço). Sem garantia de correção.
func filterByProximity(punches []model.TimePunch, entry, exit string) []candidate {
	entryMin, err := utils.ClockMinutes(entry)
	if err != nil {
		return nil
	}
	exitMin, err := utils.ClockMinutes(exit)
	if err != nil {
		return nil
	}

	var out []candidate
	for _, p := range punches {
		if p.HoraRegistro == "" {
			continue
		}
		at, ok := ParsePunchTime(p.HoraRegistro)
		if !ok {
			continue
		}
		min := utils.MinuteOfDay(at)
		nearEntry := utils.AbsMinutes(min, entryMin) <= proximityWindowMinutes
		nearExit := utils.AbsMinutes(min, exitMin) <= proximityWindowMinutes
		between := min > entryMin && min < exitMin
		if nearEntry || nearExit || between {
			out = append(out, candidate{punch: p, at: at})
		}
	}
	return out
}

// tagsTrusted informa se as marcações de tipo podem ser usadas diretamente:
// todas válidas e estritamente crescentes na ordem temporal dos candidatos.
func tagsTrusted(cands []candidate) bool {
	last := model.PunchType(0)
	for _, c := range cands {
		t := c.punch.Type()
		if !t.Valid() || t <= last {
			return false
		}
		last = t
	}
	return true
}

func (r *Reconciliation) assign(t model.PunchType, c candidate) {
	v := SlotValue{Clock: utils.FormatClock(c.at), ID: c.punch.IDRegistro}
	switch t {
	case model.PunchEntrada:
		r.Entrada = v
	case model.PunchInicioAlmoco:
		r.InicioAlmoco = v
	case model.PunchFimAlmoco:
		r.FimAlmoco = v
	case model.PunchSaida:
		r.Saida = v
	}
}

// assignPositional distribui os candidatos (já ordenados por hora) pelos
// slots segundo a contagem. Com mais de quatro registros apenas os quatro
// primeiros são usados; os excedentes são descartados silenciosamente.
func (r *Reconciliation) assignPositional(cands []candidate, entry, exit string) {
	switch len(cands) {
	case 1:
		// Um registro só: entrada ou saída conforme o horário exibido,
		// entrada na dúvida.
		switch utils.FormatClock(cands[0].at) {
		case entry:
			r.assign(model.PunchEntrada, cands[0])
		case exit:
			r.assign(model.PunchSaida, cands[0])
		default:
			r.assign(model.PunchEntrada, cands[0])
		}
	case 2:
		r.assign(model.PunchEntrada, cands[0])
		r.assign(model.PunchSaida, cands[1])
	case 3:
		r.assignThree(cands, entry, exit)
	default:
		r.assign(model.PunchEntrada, cands[0])
		r.assign(model.PunchInicioAlmoco, cands[1])
		r.assign(model.PunchFimAlmoco, cands[2])
		r.assign(model.PunchSaida, cands[3])
	}
}

// assignThree resolve o caso ambíguo de três registros comparando as pontas
// com os horários exibidos de entrada e saída; o registro restante vira
// início de almoço. O fallback final é puramente posicional.
func (r *Reconciliation) assignThree(cands []candidate, entry, exit string) {
	c1 := utils.FormatClock(cands[0].at)
	c2 := utils.FormatClock(cands[1].at)
	c3 := utils.FormatClock(cands[2].at)

	switch {
	case c1 == entry:
		r.assign(model.PunchEntrada, cands[0])
		if c3 == exit {
			r.assign(model.PunchSaida, cands[2])
			r.assign(model.PunchInicioAlmoco, cands[1])
		} else if c2 == exit {
			r.assign(model.PunchSaida, cands[1])
			r.assign(model.PunchInicioAlmoco, cands[2])
		} else {
			r.assign(model.PunchSaida, cands[2])
			r.assign(model.PunchInicioAlmoco, cands[1])
		}
	case c3 == exit:
		r.assign(model.PunchSaida, cands[2])
		if c2 == entry {
			r.assign(model.PunchEntrada, cands[1])
			r.assign(model.PunchInicioAlmoco, cands[0])
		} else {
			r.assign(model.PunchEntrada, cands[0])
			r.assign(model.PunchInicioAlmoco, cands[1])
		}
	default:
		r.assign(model.PunchEntrada, cands[0])
		r.assign(model.PunchInicioAlmoco, cands[1])
		r.assign(model.PunchSaida, cands[2])
	}
}
