package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"PontoWeb/config"
	"PontoWeb/internal/backend"
	"PontoWeb/internal/cache"
	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/token"
	"PontoWeb/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// Login autentica no backend e abre a sessão: o token remoto vai para o
// Redis, o navegador recebe só o par JWT próprio.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, pkgerrors.InvalidEmail
	}

	result, err := backend.Get().Login(ctx, req.Email, req.Senha)
	if err != nil {
		return nil, err
	}

	if err := cache.SetBackendToken(ctx, result.UserID, result.Token); err != nil {
		logger.Logger.Error("failed to store backend token",
			zap.Int64("user_id", result.UserID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(strconv.FormatInt(result.UserID, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}
	if err := cache.SetRefreshToken(ctx, result.UserID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	// Aquece a projeção do perfil; falha aqui não impede o login.
	if user, err := backend.Get().GetUser(ctx, result.Token, result.UserID); err == nil {
		profile := model.ProfileOf(*user)
		if err := cache.SetProfile(ctx, result.UserID, &profile); err != nil {
			logger.Logger.Warn("failed to warm profile cache", zap.Error(err))
		}
	}

	logger.Logger.Info("user logged in", zap.Int64("user_id", result.UserID))

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User: dto.UserSnapshot{
			ID:    result.UserID,
			Nome:  result.Nome,
			Email: result.Email,
		},
	}, nil
}

// Refresh troca um refresh token válido por um novo par. O refresh é
// rotacionado: o anterior deixa de valer.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	uid, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, pkgerrors.SessionExpired
	}
	userID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return nil, pkgerrors.InvalidUserID
	}

	if !cache.ValidateRefreshTokenExists(ctx, userID, req.RefreshToken) {
		return nil, pkgerrors.SessionExpired
	}
	// Sem token remoto nenhuma operação de domínio funciona; renovar o JWT
	// nesse estado só adiaria o erro.
	if !cache.HasBackendSession(ctx, userID) {
		return nil, pkgerrors.SessionExpired
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}
	if err := cache.SetRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return &dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Logout encerra a sessão local. O backend não é informado, espelhando o
// comportamento do front antigo.
func (s *AuthService) Logout(ctx context.Context, userID int64) {
	if err := cache.DeleteBackendToken(ctx, userID); err != nil {
		logger.Logger.Warn("failed to delete backend token", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := cache.DeleteRefreshToken(ctx, userID); err != nil {
		logger.Logger.Warn("failed to delete refresh token", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := cache.DeleteProfile(ctx, userID); err != nil {
		logger.Logger.Warn("failed to delete cached profile", zap.Int64("user_id", userID), zap.Error(err))
	}
	logger.Logger.Info("user logged out", zap.Int64("user_id", userID))
}

func (s *AuthService) RecoverPassword(ctx context.Context, req *dto.RecoverPasswordRequest) error {
	if !utils.ValidateEmail(req.Email) {
		return pkgerrors.InvalidEmail
	}
	return backend.Get().RecoverPassword(ctx, req.Email)
}

func (s *AuthService) ValidateRecoveryCode(ctx context.Context, req *dto.ValidateCodeRequest) error {
	if !utils.ValidateEmail(req.Email) {
		return pkgerrors.InvalidEmail
	}
	return backend.Get().ValidateRecoveryCode(ctx, req.Email, req.Codigo)
}

func (s *AuthService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	if !utils.ValidateEmail(req.Email) {
		return pkgerrors.InvalidEmail
	}
	if !utils.ValidatePassword(req.Senha) {
		return pkgerrors.InvalidPassword
	}
	return backend.Get().ChangePassword(ctx, req.Email, req.Senha)
}

// AdminLogin confere a senha administrativa configurada. O front antigo
// carregava uma senha fixa no código; aqui ela vem do ambiente.
func (s *AuthService) AdminLogin(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(config.Cfg.AdminPassword)) != 1 {
		return pkgerrors.AdminPasswordInvalid
	}
	return nil
}
