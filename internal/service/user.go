package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"PontoWeb/internal/backend"
	"PontoWeb/internal/cache"
	"PontoWeb/internal/model"
	"PontoWeb/internal/model/dto"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
	"PontoWeb/utils"
)

var (
	userService *UserService
	userOnce    sync.Once
)

func User() *UserService {
	userOnce.Do(func() {
		userService = &UserService{}
	})
	return userService
}

type UserService struct{}

// GetProfile devolve a projeção reduzida do perfil, preferindo o cache.
// Miss busca o usuário no backend e repõe a projeção.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	if profile, hit, err := cache.GetProfile(ctx, userID); err == nil && hit {
		return &dto.ProfileResponse{Profile: *profile}, nil
	}

	remoteToken, err := backendToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := backend.Get().GetUser(ctx, remoteToken, userID)
	if err != nil {
		return nil, err
	}

	profile := model.ProfileOf(*user)
	if err := cache.SetProfile(ctx, userID, &profile); err != nil {
		logger.Logger.Warn("failed to cache profile", zap.Int64("user_id", userID), zap.Error(err))
	}
	return &dto.ProfileResponse{Profile: profile}, nil
}

// Get busca o cadastro completo de um usuário.
func (s *UserService) Get(ctx context.Context, sessionUserID, id int64) (*model.User, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	return backend.Get().GetUser(ctx, remoteToken, id)
}

// List devolve todos os usuários, para o dashboard administrativo.
func (s *UserService) List(ctx context.Context, sessionUserID int64) (*dto.UserListResponse, error) {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}
	users, err := backend.Get().ListUsers(ctx, remoteToken)
	if err != nil {
		return nil, err
	}
	return &dto.UserListResponse{Usuarios: users}, nil
}

func validateUserForm(req *dto.UserRequest, requirePassword bool) error {
	if !utils.ValidateName(req.Nome) {
		return pkgerrors.InvalidName
	}
	if !utils.ValidateEmail(req.Email) {
		return pkgerrors.InvalidEmail
	}
	if requirePassword || req.Senha != "" {
		if !utils.ValidatePassword(req.Senha) {
			return pkgerrors.InvalidPassword
		}
	}
	return nil
}

// Create cadastra um usuário novo.
func (s *UserService) Create(ctx context.Context, sessionUserID int64, req *dto.UserRequest) (*model.User, error) {
	if err := validateUserForm(req, true); err != nil {
		return nil, err
	}
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	user, err := backend.Get().CreateUser(ctx, remoteToken, req.ToModel())
	if err != nil {
		return nil, err
	}
	logger.Logger.Info("user created", zap.Int64("by", sessionUserID))
	return user, nil
}

// Update regrava o cadastro inteiro. Quando o usuário edita o próprio
// perfil, a projeção em cache é renovada na hora.
func (s *UserService) Update(ctx context.Context, sessionUserID int64, req *dto.UserRequest) (*model.User, error) {
	if err := validateUserForm(req, false); err != nil {
		return nil, err
	}
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return nil, err
	}

	user, err := backend.Get().UpdateUser(ctx, remoteToken, req.ToModel())
	if err != nil {
		return nil, err
	}

	if req.IDUsuario == sessionUserID {
		updated := req.ToModel()
		if user != nil {
			updated = *user
		}
		profile := model.ProfileOf(updated)
		if err := cache.SetProfile(ctx, sessionUserID, &profile); err != nil {
			logger.Logger.Warn("failed to refresh cached profile", zap.Error(err))
		}
	}
	return user, nil
}

// Delete desativa um usuário (exclusão lógica no backend).
func (s *UserService) Delete(ctx context.Context, sessionUserID, id int64) error {
	remoteToken, err := backendToken(ctx, sessionUserID)
	if err != nil {
		return err
	}
	if err := backend.Get().DeleteUser(ctx, remoteToken, id); err != nil {
		return err
	}
	logger.Logger.Info("user deactivated", zap.Int64("user_id", id), zap.Int64("by", sessionUserID))
	return nil
}
