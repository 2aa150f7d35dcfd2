package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition representa um código de erro de negócio e sua mensagem padrão.
type Definition struct {
	Code    string
	Message string
}

// Autenticação e sessão.
var (
	InvalidCredentials   = Definition{Code: "INVALID_CREDENTIALS", Message: "E-mail ou senha incorretos"}
	Unauthorized         = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	SessionExpired       = Definition{Code: "SESSION_EXPIRED", Message: "Sessão expirada, faça login novamente"}
	InvalidUserID        = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	RecoveryCodeInvalid  = Definition{Code: "RECOVERY_CODE_INVALID", Message: "Código de recuperação inválido"}
	AdminPasswordInvalid = Definition{Code: "ADMIN_PASSWORD_INVALID", Message: "Senha administrativa incorreta"}
	AuthRateLimited      = Definition{Code: "AUTH_RATE_LIMITED", Message: "Muitas tentativas, aguarde um momento"}
)

// Validação de formulários.
var (
	InvalidRequest  = Definition{Code: "INVALID_REQUEST", Message: "Requisição inválida"}
	InvalidEmail    = Definition{Code: "INVALID_EMAIL", Message: "Email inválido"}
	InvalidPassword = Definition{Code: "INVALID_PASSWORD", Message: "A senha deve conter pelo menos 8 caracteres, uma letra maiúscula, uma letra minúscula e um número"}
	InvalidName     = Definition{Code: "INVALID_NAME", Message: "Nome inválido. Use apenas letras e espaços."}
)

// Usuários e cargos.
var (
	UserNotFound  = Definition{Code: "USER_NOT_FOUND", Message: "Usuário não encontrado"}
	CargoNotFound = Definition{Code: "CARGO_NOT_FOUND", Message: "Cargo não encontrado"}
)

// Registro de ponto.
var (
	PunchDayComplete     = Definition{Code: "PUNCH_DAY_COMPLETE", Message: "Todos os pontos do dia já foram registrados"}
	AjusteNoRecords      = Definition{Code: "AJUSTE_NO_RECORDS", Message: "Nenhum registro encontrado para o dia selecionado"}
	PunchOutsideGeofence = Definition{Code: "PUNCH_OUTSIDE_GEOFENCE", Message: "Você está fora do raio permitido para registrar o ponto"}
)

// Colaboradores externos.
var (
	BackendUnavailable = Definition{Code: "BACKEND_UNAVAILABLE", Message: "Serviço de ponto indisponível, tente novamente"}
	BackendRejected    = Definition{Code: "BACKEND_REJECTED", Message: "Operação recusada pelo serviço de ponto"}
)

// Erros sentinela do pacote token.
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token")
)

// WithMessage devolve a mesma Definition com a mensagem vinda do backend,
// quando ele explica a recusa (campo mensagem do envelope).
func (d Definition) WithMessage(msg string) Definition {
	if msg == "" {
		return d
	}
	return Definition{Code: d.Code, Message: msg}
}

// Lookup permite resolver uma Definition pelo código.
var Lookup = map[string]Definition{
	InvalidCredentials.Code:   InvalidCredentials,
	Unauthorized.Code:         Unauthorized,
	SessionExpired.Code:       SessionExpired,
	InvalidUserID.Code:        InvalidUserID,
	RecoveryCodeInvalid.Code:  RecoveryCodeInvalid,
	AdminPasswordInvalid.Code: AdminPasswordInvalid,
	AuthRateLimited.Code:      AuthRateLimited,
	InvalidRequest.Code:       InvalidRequest,
	InvalidEmail.Code:         InvalidEmail,
	InvalidPassword.Code:      InvalidPassword,
	InvalidName.Code:          InvalidName,
	UserNotFound.Code:         UserNotFound,
	CargoNotFound.Code:        CargoNotFound,
	PunchDayComplete.Code:     PunchDayComplete,
	AjusteNoRecords.Code:      AjusteNoRecords,
	PunchOutsideGeofence.Code: PunchOutsideGeofence,
	BackendUnavailable.Code:   BackendUnavailable,
	BackendRejected.Code:      BackendRejected,
}

// Get devolve a Definition do código, ou uma Definition genérica.
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
