package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"joao@empresa.com.br",
		"maria.silva@ponto.dev",
		"a@b.c",
	}
	invalid := []string{
		"",
		"sem-arroba.com",
		"dois@@arrobas.com",
		"espaco @dominio.com",
		"sem-dominio@",
	}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"completa", "Senha123!", true},
		{"curta", "Ab1!", false},
		{"sem maiuscula", "senha123!", false},
		{"sem minuscula", "SENHA123!", false},
		{"sem digito", "SenhaForte!", false},
		{"sem especial", "Senha1234", false},
		{"caractere fora do conjunto", "Senha123!ç", false},
	}
	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Fatalf("%s: ValidatePassword(%q) = %v, want %v", tt.name, tt.password, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{
		"João da Silva",
		"Maria",
		"José Álvares",
	}
	invalid := []string{
		"",
		"Jo",        // curto demais
		"R2-D2",     // dígitos e hífen
		"Nome_Com_Sublinhado",
	}

	for _, name := range valid {
		if !ValidateName(name) {
			t.Fatalf("ValidateName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if ValidateName(name) {
			t.Fatalf("ValidateName(%q) = true, want false", name)
		}
	}
}
