package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"PontoWeb/config"
	"PontoWeb/internal/model"
	"PontoWeb/storage/redis"
)

// Projeção reduzida do perfil (nome, email, nascimento, telefone) exibida
// fora da tela de perfil. Regra de invalidação explícita: apagada no logout,
// renovada após atualização de cadastro.

const profilePrefix = "profile"

func profileKey(userID int64) string {
	return redis.Key(profilePrefix, strconv.FormatInt(userID, 10))
}

func SetProfile(ctx context.Context, userID int64, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	ttl := time.Duration(config.Cfg.ProfileCacheTTLSeconds) * time.Second

	return redis.Client().Set(ctx, profileKey(userID), data, ttl).Err()
}

func GetProfile(ctx context.Context, userID int64) (*model.Profile, bool, error) {
	raw, err := redis.Client().Get(ctx, profileKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var profile model.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		_ = redis.Client().Del(ctx, profileKey(userID)).Err()
		return nil, false, nil
	}
	return &profile, true, nil
}

func DeleteProfile(ctx context.Context, userID int64) error {
	return redis.Client().Del(ctx, profileKey(userID)).Err()
}
