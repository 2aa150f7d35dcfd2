package middleware

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"PontoWeb/internal/cache"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/response"
	"PontoWeb/pkg/token"
)

const (
	IdentityKey = token.IdentityKey
)

var (
	authMiddleware *jwt.HertzJWTMiddleware
)

func initAuthMiddleware() error {
	// reaproveita o gerador compartilhado do pacote token
	sharedGenerator := token.GetGenerator()
	if sharedGenerator == nil {
		return fmt.Errorf("token generator not initialized, call token.Init() first")
	}

	authMiddleware = &jwt.HertzJWTMiddleware{
		Realm:       "PontoWeb API",
		Key:         sharedGenerator.Key,
		Timeout:     sharedGenerator.Timeout,
		MaxRefresh:  sharedGenerator.MaxRefresh,
		IdentityKey: sharedGenerator.IdentityKey,
		TimeFunc:    sharedGenerator.TimeFunc,

		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			uid, ok := claims[IdentityKey].(string)
			if !ok {
				if uidFloat, ok := claims[IdentityKey].(float64); ok {
					uid = fmt.Sprintf("%.0f", uidFloat)
				} else {
					return nil
				}
			}
			return uid
		},

		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"error": map[string]interface{}{
					"code":    "UNAUTHORIZED",
					"message": message,
				},
			})
		},

		TokenLookup:   "header: Authorization, query: token, cookie: jwt",
		TokenHeadName: "Bearer",
	}

	return nil
}

func AuthMiddleware() app.HandlerFunc {
	if authMiddleware == nil {
		panic("AuthMiddleware not initialized, call Init() first")
	}
	return authMiddleware.MiddlewareFunc()
}

// SessionGate exige, além do JWT válido, sessão viva com o backend de ponto.
// JWT sem token remoto no Redis é sessão morta: nenhuma operação de domínio
// funcionaria, então o cliente é mandado de volta para o login.
func SessionGate() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userID, ok := GetUserID(ctx, c)
		if !ok {
			c.Abort()
			response.Error(ctx, c, pkgerrors.Unauthorized)
			return
		}

		if !cache.HasBackendSession(ctx, userID) {
			c.Abort()
			response.Error(ctx, c, pkgerrors.SessionExpired)
			return
		}

		c.Next(ctx)
	}
}

// GetUserID lê o id numérico do usuário autenticado do contexto da requisição.
func GetUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return 0, false
	}

	uid, ok := value.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
