package middleware

import (
	"go.uber.org/zap"

	"PontoWeb/pkg/logger"
)

// Init inicializa os middlewares que dependem de estado compartilhado.
func Init() error {
	if err := initAuthMiddleware(); err != nil {
		logger.Logger.Error("Failed to initialize auth middleware", zap.Error(err))
		return err
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
