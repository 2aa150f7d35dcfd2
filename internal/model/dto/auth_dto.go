package dto

// ========== DTOs de autenticação ==========

// LoginRequest é o formulário de login.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse devolve o par de tokens da sessão e um resumo do usuário.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserSnapshot `json:"user"`
}

// UserSnapshot é o resumo devolvido no login.
type UserSnapshot struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// RefreshRequest renova o access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse devolve o novo par de tokens.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// RecoverPasswordRequest inicia a recuperação de senha.
type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ValidateCodeRequest valida o código recebido por e-mail.
type ValidateCodeRequest struct {
	Email  string `json:"email" binding:"required"`
	Codigo string `json:"codigo" binding:"required"`
}

// ChangePasswordRequest define a nova senha após a validação do código.
type ChangePasswordRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// AdminLoginRequest abre a sessão administrativa.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
