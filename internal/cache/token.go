package cache

import (
	"context"
	"strconv"
	"time"

	"PontoWeb/config"
	"PontoWeb/storage/redis"
)

const tokenPrefix = "token"

// SetRefreshToken guarda o refresh token emitido para o usuário.
// Key: ponto:token:refresh:{user_id}
// TTL: JWT_REFRESH_DAYS
func SetRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	key := redis.Key(tokenPrefix, "refresh", strconv.FormatInt(userID, 10))
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

func GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	key := redis.Key(tokenPrefix, "refresh", strconv.FormatInt(userID, 10))
	return redis.Client().Get(ctx, key).Result()
}

// DeleteRefreshToken invalida o refresh token (logout).
func DeleteRefreshToken(ctx context.Context, userID int64) error {
	key := redis.Key(tokenPrefix, "refresh", strconv.FormatInt(userID, 10))
	return redis.Client().Del(ctx, key).Err()
}

// ValidateRefreshTokenExists confere se o refresh token apresentado é o que
// foi emitido por último.
func ValidateRefreshTokenExists(ctx context.Context, userID int64, refreshToken string) bool {
	stored, err := GetRefreshToken(ctx, userID)
	if err != nil {
		return false
	}
	return stored == refreshToken
}
