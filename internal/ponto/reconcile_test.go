package ponto

import (
	"testing"
	"time"

	"PontoWeb/internal/model"
)

var testNow = time.Date(2026, time.March, 25, 10, 0, 0, 0, time.UTC)

func punchAt(id int64, typ int, date, clock string) model.TimePunch {
	return model.TimePunch{
		IDUsuario:           1,
		HoraRegistro:        date + "T" + clock + ":00",
		DataRegistro:        date + "T00:00:00",
		IDTipoRegistroPonto: typ,
		IDRegistro:          id,
	}
}

func slotClocks(rec Reconciliation) [4]string {
	return [4]string{rec.Entrada.Clock, rec.InicioAlmoco.Clock, rec.FimAlmoco.Clock, rec.Saida.Clock}
}

func slotIDs(rec Reconciliation) [4]int64 {
	return [4]int64{rec.Entrada.ID, rec.InicioAlmoco.ID, rec.FimAlmoco.ID, rec.Saida.ID}
}

func TestReconcileSentinel(t *testing.T) {
	punches := []model.TimePunch{punchAt(1, 1, "2026-03-20", "08:00")}

	tests := []struct {
		name    string
		label   string
		punches []model.TimePunch
	}{
		{"empty label", "", punches},
		{"no punches", "sex, 20/03", nil},
		{"label without date", "sem data", punches},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ReconcileAt(tt.label, "08:00 - 17:00", tt.punches, testNow)
			if rec.Resolved {
				t.Fatal("expected sentinel reconciliation")
			}
			if got := slotClocks(rec); got != [4]string{} {
				t.Fatalf("expected empty slots, got %v", got)
			}
			if got := slotIDs(rec); got != [4]int64{} {
				t.Fatalf("expected zero ids, got %v", got)
			}

			times := rec.Times()
			if times.Entrada.Location != "" || times.Saida.Location != "" {
				t.Fatal("sentinel projection must not carry a location")
			}
		})
	}
}

func TestReconcileFourPositional(t *testing.T) {
	// Marcações em ordem inversa não são confiáveis; vale a posição.
	punches := []model.TimePunch{
		punchAt(14, 4, "2026-03-20", "08:01"),
		punchAt(13, 3, "2026-03-20", "12:02"),
		punchAt(12, 2, "2026-03-20", "13:03"),
		punchAt(11, 1, "2026-03-20", "17:04"),
	}

	rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
	if !rec.Resolved {
		t.Fatal("expected resolved reconciliation")
	}
	if got, want := slotClocks(rec), [4]string{"08:01", "12:02", "13:03", "17:04"}; got != want {
		t.Fatalf("clocks = %v, want %v", got, want)
	}
	if got, want := slotIDs(rec), [4]int64{14, 13, 12, 11}; got != want {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestReconcileTwoUntagged(t *testing.T) {
	tests := []struct {
		name   string
		clocks [2]string
	}{
		{"matching displayed bounds", [2]string{"08:00", "17:00"}},
		{"arbitrary ascending times", [2]string{"09:12", "15:47"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			punches := []model.TimePunch{
				punchAt(2, 0, "2026-03-20", tt.clocks[1]),
				punchAt(1, 0, "2026-03-20", tt.clocks[0]),
			}

			rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
			want := [4]string{tt.clocks[0], "", "", tt.clocks[1]}
			if got := slotClocks(rec); got != want {
				t.Fatalf("clocks = %v, want %v", got, want)
			}
			if got, want := slotIDs(rec), [4]int64{1, 0, 0, 2}; got != want {
				t.Fatalf("ids = %v, want %v", got, want)
			}
		})
	}
}

func TestReconcileThreeMiddleIsLunchStart(t *testing.T) {
	punches := []model.TimePunch{
		punchAt(1, 0, "2026-03-20", "08:00"),
		punchAt(2, 0, "2026-03-20", "12:00"),
		punchAt(3, 0, "2026-03-20", "17:00"),
	}

	rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
	if rec.InicioAlmoco.Clock != "12:00" {
		t.Fatalf("inicioAlmoco = %q, want 12:00", rec.InicioAlmoco.Clock)
	}
	if rec.FimAlmoco.Clock != "" {
		t.Fatalf("fimAlmoco = %q, want empty", rec.FimAlmoco.Clock)
	}
	if got, want := slotIDs(rec), [4]int64{1, 2, 0, 3}; got != want {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestReconcileTrustedTags(t *testing.T) {
	// Cenário do modal de ajuste: duas marcações confiáveis vão para os
	// slots nomeados, não para as pontas posicionais.
	punches := []model.TimePunch{
		punchAt(101, 1, "2026-03-20", "08:15"),
		punchAt(102, 2, "2026-03-20", "12:00"),
	}

	rec := ReconcileAt("qui, 20/03", "08:00 - 17:00", punches, testNow)
	times := rec.Times()
	if times.Entrada.Time != "08:15" {
		t.Fatalf("entrada = %q, want 08:15", times.Entrada.Time)
	}
	if times.InicioAlmoco.Time != "12:00" {
		t.Fatalf("inicioAlmoco = %q, want 12:00", times.InicioAlmoco.Time)
	}
	if times.FimAlmoco.Time != "" || times.Saida.Time != "" {
		t.Fatalf("expected empty fimAlmoco and saida, got %q and %q", times.FimAlmoco.Time, times.Saida.Time)
	}
	if times.Entrada.Location != LocationPlaceholder {
		t.Fatalf("location = %q, want %q", times.Entrada.Location, LocationPlaceholder)
	}

	ids := rec.IDs()
	if ids.Entrada != 101 || ids.InicioAlmoco != 102 || ids.FimAlmoco != 0 || ids.Saida != 0 {
		t.Fatalf("ids = %+v", ids)
	}
}

func TestReconcileTruncatesExcess(t *testing.T) {
	punches := []model.TimePunch{
		punchAt(1, 0, "2026-03-20", "08:00"),
		punchAt(2, 0, "2026-03-20", "12:00"),
		punchAt(3, 0, "2026-03-20", "13:00"),
		punchAt(4, 0, "2026-03-20", "17:00"),
		punchAt(5, 0, "2026-03-20", "18:30"),
	}

	rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
	if got, want := slotIDs(rec), [4]int64{1, 2, 3, 4}; got != want {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for _, id := range slotIDs(rec) {
		if id == 5 {
			t.Fatal("fifth punch must be discarded")
		}
	}
}

func TestReconcileProximityFallback(t *testing.T) {
	// Datas erradas no servidor: recupera pelos horários exibidos. O
	// registro das 20:00 fica fora da janela e do intervalo.
	punches := []model.TimePunch{
		punchAt(1, 1, "2026-03-19", "08:03"),
		punchAt(2, 2, "2026-03-19", "12:30"),
		punchAt(3, 4, "2026-03-19", "17:02"),
		punchAt(4, 4, "2026-03-19", "20:00"),
	}

	rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
	if !rec.Resolved {
		t.Fatal("expected resolved reconciliation")
	}
	// Caminho de proximidade nunca confia nas marcações.
	if got, want := slotClocks(rec), [4]string{"08:03", "12:30", "", "17:02"}; got != want {
		t.Fatalf("clocks = %v, want %v", got, want)
	}
}

func TestReconcileDayFilterIdempotent(t *testing.T) {
	punches := []model.TimePunch{
		punchAt(1, 0, "2026-03-20", "08:05"),
		punchAt(2, 0, "2026-03-20", "16:55"),
		punchAt(3, 0, "2026-03-21", "08:00"),
	}

	first := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)

	// Reapresentar o intervalo derivado da própria saída deve reselecionar
	// exatamente os mesmos registros.
	derived := first.Entrada.Clock + " - " + first.Saida.Clock
	second := ReconcileAt("sex, 20/03", derived, punches, testNow)

	if slotIDs(first) != slotIDs(second) {
		t.Fatalf("ids diverged: %v vs %v", slotIDs(first), slotIDs(second))
	}
	if got, want := slotIDs(second), [4]int64{1, 0, 0, 2}; got != want {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestReconcileSingleRecord(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  [4]string
	}{
		{"matches entry", "08:00", [4]string{"08:00", "", "", ""}},
		{"matches exit", "17:00", [4]string{"", "", "", "17:00"}},
		{"matches neither", "10:30", [4]string{"10:30", "", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			punches := []model.TimePunch{punchAt(9, 0, "2026-03-20", tt.clock)}
			rec := ReconcileAt("sex, 20/03", "08:00 - 17:00", punches, testNow)
			if got := slotClocks(rec); got != tt.want {
				t.Fatalf("clocks = %v, want %v", got, tt.want)
			}
		})
	}
}
