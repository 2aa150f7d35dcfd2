package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"PontoWeb/internal/model"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func businessCode(t *testing.T, err error) string {
	t.Helper()
	def, ok := err.(pkgerrors.Definition)
	if !ok {
		t.Fatalf("expected business error, got %T: %v", err, err)
	}
	return def.Code
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login/realizarLogin" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		if payload["email"] == "ana@empresa.com" && payload["senha"] == "Senha@123" {
			fmt.Fprint(w, `{"sucesso":true,"mensagem":null,"token":"backend-token","idUsuario":12,"usuario":{"id":12,"nome":"Ana","email":"ana@empresa.com"}}`)
			return
		}
		fmt.Fprint(w, `{"sucesso":false,"mensagem":"E-mail ou senha incorretos","token":""}`)
	})
	client := testClient(t, handler)

	t.Run("accepted credentials", func(t *testing.T) {
		got, err := client.Login(context.Background(), "ana@empresa.com", "Senha@123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if got.Token != "backend-token" || got.UserID != 12 || got.Nome != "Ana" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("rejected credentials become a business error", func(t *testing.T) {
		_, err := client.Login(context.Background(), "ana@empresa.com", "errada")
		if err == nil {
			t.Fatal("expected error")
		}
		if code := businessCode(t, err); code != pkgerrors.InvalidCredentials.Code {
			t.Fatalf("code = %s, want %s", code, pkgerrors.InvalidCredentials.Code)
		}
		if !strings.Contains(err.Error(), "incorretos") {
			t.Fatalf("backend message lost: %v", err)
		}
	})
}

func TestBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Login(context.Background(), "a@b.com", "x")
	if code := businessCode(t, err); code != pkgerrors.BackendUnavailable.Code {
		t.Fatalf("code = %s, want %s", code, pkgerrors.BackendUnavailable.Code)
	}
}

func TestBearerTokenForwarded(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer remoto-123" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprint(w, `{"sucesso":true,"registros":[]}`)
	})
	client := testClient(t, handler)

	if _, err := client.ListPunches(context.Background(), "remoto-123"); err != nil {
		t.Fatalf("ListPunches: %v", err)
	}
}

func TestListUserPunches(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/RegistroPonto/ObterRegistrosUsuario" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("idUsuario"); got != "12" {
			t.Errorf("idUsuario = %q", got)
		}
		fmt.Fprint(w, `{"sucesso":true,"registros":[{"id_Usuario":12,"horaRegistro":"2026-03-20T08:15:00","dataRegistro":"2026-03-20T00:00:00","idTipoRegistroPonto":1,"idRegistro":901}]}`)
	})
	client := testClient(t, handler)

	got, err := client.ListUserPunches(context.Background(), "tok", 12)
	if err != nil {
		t.Fatalf("ListUserPunches: %v", err)
	}
	if len(got) != 1 || got[0].IDRegistro != 901 || got[0].IDTipoRegistroPonto != 1 {
		t.Fatalf("unexpected punches: %+v", got)
	}
}

// fakeCargoServer guarda os cargos em memória para exercitar o ciclo
// deletar-e-relistar.
type fakeCargoServer struct {
	mu     sync.Mutex
	cargos map[int64]model.Cargo
}

func (f *fakeCargoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/Cargo/Listar":
		list := make([]model.Cargo, 0, len(f.cargos))
		for _, cargo := range f.cargos {
			list = append(list, cargo)
		}
		json.NewEncoder(w).Encode(map[string]any{"sucesso": true, "mensagem": nil, "cargos": list})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/Cargo/Deletar/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/Cargo/Deletar/"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		if _, ok := f.cargos[id]; !ok {
			json.NewEncoder(w).Encode(map[string]any{"sucesso": false, "mensagem": "Cargo não encontrado"})
			return
		}
		delete(f.cargos, id)
		json.NewEncoder(w).Encode(map[string]any{"sucesso": true, "mensagem": nil})

	default:
		http.NotFound(w, r)
	}
}

func TestDeleteCargoThenList(t *testing.T) {
	fake := &fakeCargoServer{cargos: map[int64]model.Cargo{
		7: {IDCargo: 7, NomeCargo: "Analista", Salario: "4500", IndAtivo: 1},
		8: {IDCargo: 8, NomeCargo: "Gerente", Salario: "9000", IndAtivo: 1},
	}}
	client := testClient(t, fake)

	if err := client.DeleteCargo(context.Background(), "tok", 7); err != nil {
		t.Fatalf("DeleteCargo: %v", err)
	}

	list, err := client.ListCargos(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListCargos: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	for _, cargo := range list {
		if cargo.IDCargo == 7 {
			t.Fatal("deleted cargo still listed")
		}
	}

	if err := client.DeleteCargo(context.Background(), "tok", 7); err == nil {
		t.Fatal("expected error deleting missing cargo")
	}
}
