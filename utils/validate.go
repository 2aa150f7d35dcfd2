package utils

import (
	"regexp"
)

// Mesmos padrões do front antigo (regexPatterns.ts), agora aplicados no
// servidor antes de repassar ao backend.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[\p{L} ]+$`)

	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[@$!%*?&]`)
	allowedPattern = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword exige 8+ caracteres com maiúscula, minúscula, dígito e
// caractere especial, como o regex de senha do front antigo.
func ValidatePassword(password string) bool {
	return allowedPattern.MatchString(password) &&
		lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}

// ValidateName aceita apenas letras e espaços, de 3 a 100 caracteres.
func ValidateName(name string) bool {
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	return namePattern.MatchString(name)
}
