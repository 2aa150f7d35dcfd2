package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"PontoWeb/internal/middleware"
	"PontoWeb/internal/model/dto"
	"PontoWeb/internal/service"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/response"
)

// Login autentica no serviço de ponto e abre a sessão
// POST /v1/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Login(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// RefreshToken rotaciona o par de tokens
// POST /v1/auth/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Refresh(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Logout encerra a sessão local
// POST /v1/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	service.Auth().Logout(ctx, userID)
	response.Success(ctx, c, map[string]interface{}{"logged_out": true})
}

// RecoverPassword dispara o e-mail com o código de recuperação
// POST /v1/auth/recover
func RecoverPassword(ctx context.Context, c *app.RequestContext) {
	var req dto.RecoverPasswordRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().RecoverPassword(ctx, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"sent": true})
}

// ValidateRecoveryCode confere o código recebido por e-mail
// POST /v1/auth/recover/validate
func ValidateRecoveryCode(ctx context.Context, c *app.RequestContext) {
	var req dto.ValidateCodeRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().ValidateRecoveryCode(ctx, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"valid": true})
}

// ChangePassword define a nova senha após o código validado
// POST /v1/auth/recover/change
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var req dto.ChangePasswordRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().ChangePassword(ctx, &req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"changed": true})
}

// AdminLogin confere a senha administrativa e grava a flag na sessão
// POST /v1/admin/session
func AdminLogin(ctx context.Context, c *app.RequestContext) {
	var req dto.AdminLoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().AdminLogin(req.Password); err != nil {
		response.Error(ctx, c, err)
		return
	}

	if err := middleware.MarkAdminAuthenticated(c); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"authenticated": true})
}

// GetCSRFToken devolve o token anti-forgery das mutações administrativas.
// Fica atrás do middleware de CSRF: um GET só gera o token, não valida.
// GET /v1/admin/csrf
func GetCSRFToken(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, map[string]interface{}{
		"csrf_token": middleware.AdminCSRFToken(c),
	})
}

// AdminLogout encerra a sessão administrativa
// DELETE /v1/admin/session
func AdminLogout(ctx context.Context, c *app.RequestContext) {
	if err := middleware.ClearAdminSession(c); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"logged_out": true})
}
