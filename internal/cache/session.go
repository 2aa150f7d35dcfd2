package cache

import (
	"context"
	"strconv"
	"time"

	"PontoWeb/config"
	"PontoWeb/storage/redis"
)

const sessionPrefix = "session"

// SetBackendToken guarda o token da API remota do usuário logado.
// Key: ponto:session:backend:{user_id}
// TTL: mesmo horizonte do refresh token
func SetBackendToken(ctx context.Context, userID int64, token string) error {
	key := redis.Key(sessionPrefix, "backend", strconv.FormatInt(userID, 10))
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, token, ttl).Err()
}

// GetBackendToken devolve o token remoto da sessão; erro de miss vem do
// driver (redis.Nil).
func GetBackendToken(ctx context.Context, userID int64) (string, error) {
	key := redis.Key(sessionPrefix, "backend", strconv.FormatInt(userID, 10))
	return redis.Client().Get(ctx, key).Result()
}

// DeleteBackendToken encerra a sessão com o backend (logout).
func DeleteBackendToken(ctx context.Context, userID int64) error {
	key := redis.Key(sessionPrefix, "backend", strconv.FormatInt(userID, 10))
	return redis.Client().Del(ctx, key).Err()
}

// HasBackendSession informa se há sessão viva com o backend. O JWT sozinho
// não basta: sem token remoto nenhuma operação de domínio funciona.
func HasBackendSession(ctx context.Context, userID int64) bool {
	token, err := GetBackendToken(ctx, userID)
	return err == nil && token != ""
}
