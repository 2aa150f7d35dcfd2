package ponto

import (
	"testing"
	"time"

	"PontoWeb/internal/model"
)

var testSchedule = Schedule{
	Entrada:      "08:00",
	InicioAlmoco: "12:00",
	FimAlmoco:    "13:00",
	Saida:        "17:00",
}

func TestScheduleWorkedMinutes(t *testing.T) {
	if got := testSchedule.WorkedMinutes(); got != 480 {
		t.Fatalf("WorkedMinutes = %d, want 480", got)
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), "sex, 20/03"},
		{time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC), "qui, 19/03"},
		{time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), "dom, 04/01"},
	}
	for _, tt := range tests {
		if got := DayLabel(tt.date); got != tt.want {
			t.Fatalf("DayLabel(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestNextExpected(t *testing.T) {
	day := "2026-03-20"
	tests := []struct {
		name    string
		types   []int
		want    model.PunchType
		allDone bool
	}{
		{"empty day starts with entrada", nil, model.PunchEntrada, false},
		{"after lunch start comes lunch end", []int{1, 2}, model.PunchFimAlmoco, false},
		{"invalid tags are ignored", []int{1, 0, 9}, model.PunchInicioAlmoco, false},
		{"complete day", []int{1, 2, 3, 4}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var punches []model.TimePunch
			for i, typ := range tt.types {
				punches = append(punches, punchAt(int64(i+1), typ, day, "08:00"))
			}

			got := NextExpected(punches)
			if tt.allDone {
				if got != nil {
					t.Fatalf("NextExpected = %v, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Fatalf("NextExpected = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterDay(t *testing.T) {
	day := time.Date(2026, time.March, 20, 9, 30, 0, 0, time.UTC)
	punches := []model.TimePunch{
		punchAt(1, 1, "2026-03-20", "08:00"),
		punchAt(2, 2, "2026-03-20", "12:00"),
		punchAt(3, 1, "2026-03-19", "08:00"),
		{IDUsuario: 2, DataRegistro: "2026-03-20T00:00:00", HoraRegistro: "2026-03-20T08:00:00", IDRegistro: 4},
	}

	got := FilterDay(punches, 1, day)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].IDRegistro != 1 || got[1].IDRegistro != 2 {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestDelayMinutes(t *testing.T) {
	day := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	at := func(clock string) time.Time {
		parsed, err := time.Parse("15:04", clock)
		if err != nil {
			t.Fatalf("bad clock %q", clock)
		}
		return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		typ   model.PunchType
		clock string
		want  int
	}{
		{"late entrada", model.PunchEntrada, "08:10", 10},
		{"on time", model.PunchEntrada, "08:00", 0},
		{"early is not a delay", model.PunchEntrada, "07:50", 0},
		{"late lunch end", model.PunchFimAlmoco, "13:25", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DelayMinutes(tt.typ, at(tt.clock), testSchedule); got != tt.want {
				t.Fatalf("DelayMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildDaySummaries(t *testing.T) {
	punches := []model.TimePunch{
		// Dia completo dentro da jornada.
		punchAt(1, 1, "2026-03-20", "08:00"),
		punchAt(2, 2, "2026-03-20", "12:00"),
		punchAt(3, 3, "2026-03-20", "13:00"),
		punchAt(4, 4, "2026-03-20", "17:00"),
		// Dia com saída antecipada e sem almoço marcado.
		punchAt(5, 0, "2026-03-19", "08:00"),
		punchAt(6, 0, "2026-03-19", "15:00"),
		// Dia com um único registro.
		punchAt(7, 0, "2026-03-18", "08:00"),
	}

	got := BuildDaySummaries(punches, testSchedule, testNow)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	want := []model.DaySummary{
		{Data: "sex, 20/03", EntradaSaida: "08:00 - 17:00", HorasExtras: "00:00", Faltantes: "00:00", Saldo: "00:00"},
		{Data: "qui, 19/03", EntradaSaida: "08:00 - 15:00", HorasExtras: "00:00", Faltantes: "01:00", Saldo: "-01:00"},
		{Data: "qua, 18/03", EntradaSaida: "08:00 - 08:00", HorasExtras: "00:00", Faltantes: "08:00", Saldo: "-08:00"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("summary[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlySummary(t *testing.T) {
	punches := []model.TimePunch{
		// Março: um dia com uma hora extra, outro com atraso na entrada.
		punchAt(1, 1, "2026-03-20", "08:00"),
		punchAt(2, 2, "2026-03-20", "12:00"),
		punchAt(3, 3, "2026-03-20", "13:00"),
		punchAt(4, 4, "2026-03-20", "18:00"),
		punchAt(5, 0, "2026-03-19", "08:10"),
		punchAt(6, 0, "2026-03-19", "16:10"),
		// Fevereiro: entrada adiantada, carga exata.
		punchAt(7, 0, "2026-02-10", "07:50"),
		punchAt(8, 0, "2026-02-10", "15:50"),
	}

	got := MonthlySummary(punches, testSchedule, testNow)
	if len(got.Horas) != 2 || len(got.Pontualidade) != 2 {
		t.Fatalf("months = %d/%d, want 2/2", len(got.Horas), len(got.Pontualidade))
	}

	feb, mar := got.Horas[0], got.Horas[1]
	if feb.Mes != "2026-02" || feb.SaldoMinutos != 0 || feb.Saldo != "00:00" {
		t.Fatalf("feb balance = %+v", feb)
	}
	if mar.Mes != "2026-03" || mar.SaldoMinutos != 60 || mar.Saldo != "01:00" {
		t.Fatalf("mar balance = %+v", mar)
	}

	febP, marP := got.Pontualidade[0], got.Pontualidade[1]
	if febP.Atrasos != 0 || febP.Adiantamentos != 1 {
		t.Fatalf("feb punctuality = %+v", febP)
	}
	if marP.Atrasos != 1 || marP.Adiantamentos != 0 {
		t.Fatalf("mar punctuality = %+v", marP)
	}
}
