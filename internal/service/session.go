package service

import (
	"context"

	"PontoWeb/internal/cache"
	pkgerrors "PontoWeb/pkg/errors"
)

// backendToken resolve o token remoto da sessão. Sessão sem token remoto é
// tratada como expirada; o cliente volta para o login.
func backendToken(ctx context.Context, userID int64) (string, error) {
	token, err := cache.GetBackendToken(ctx, userID)
	if err != nil || token == "" {
		return "", pkgerrors.SessionExpired
	}
	return token, nil
}
