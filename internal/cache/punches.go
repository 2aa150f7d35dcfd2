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

// Cache dos registros brutos de ponto do usuário. O modal de ajuste e a
// tabela de histórico reconciliam sobre esta cópia, evitando repetir a
// listagem no backend a cada abertura.

const punchPrefix = "punches"

func punchKey(userID int64) string {
	return redis.Key(punchPrefix, strconv.FormatInt(userID, 10))
}

func SetUserPunches(ctx context.Context, userID int64, punches []model.TimePunch) error {
	data, err := json.Marshal(punches)
	if err != nil {
		return err
	}
	ttl := time.Duration(config.Cfg.PunchCacheTTLSeconds) * time.Second

	return redis.Client().Set(ctx, punchKey(userID), data, ttl).Err()
}

// GetUserPunches devolve a cópia em cache; hit falso em miss ou corrupção.
func GetUserPunches(ctx context.Context, userID int64) ([]model.TimePunch, bool, error) {
	raw, err := redis.Client().Get(ctx, punchKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var punches []model.TimePunch
	if err := json.Unmarshal(raw, &punches); err != nil {
		// entrada corrompida, descarta e força nova busca
		_ = redis.Client().Del(ctx, punchKey(userID)).Err()
		return nil, false, nil
	}
	return punches, true, nil
}

// InvalidateUserPunches descarta a cópia após um novo registro ou ajuste.
func InvalidateUserPunches(ctx context.Context, userID int64) error {
	return redis.Client().Del(ctx, punchKey(userID)).Err()
}
