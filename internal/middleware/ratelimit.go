package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"PontoWeb/config"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/response"
	"PontoWeb/storage/redis"
)

// RateLimitConfig parametriza um limitador de janela deslizante.
type RateLimitConfig struct {
	// janela em segundos
	Window int
	// máximo de requisições dentro da janela
	MaxRequests int
	// prefixo da chave no Redis
	KeyPrefix string
	// limitar por usuário autenticado
	ByUserID bool
	// limitar por IP
	ByIP bool
	// tempo de bloqueio (segundos) após estourar o limite
	BlockDuration int
}

// RateLimiter implementa janela deslizante sobre um zset no Redis.
type RateLimiter struct {
	config RateLimitConfig
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config: config,
	}
}

func (rl *RateLimiter) getKey(ctx context.Context, c *app.RequestContext) string {
	var identifier string

	if rl.config.ByUserID {
		if userID, exists := GetUserID(ctx, c); exists {
			identifier = fmt.Sprintf("user:%d", userID)
		}
	}

	if identifier == "" && rl.config.ByIP {
		identifier = fmt.Sprintf("ip:%s", c.ClientIP())
	}

	return redis.Key(rl.config.KeyPrefix, identifier)
}

// Allow verifica se a requisição cabe na janela corrente.
func (rl *RateLimiter) Allow(ctx context.Context, c *app.RequestContext) (bool, int, error) {
	key := rl.getKey(ctx, c)
	now := time.Now()
	windowStart := now.Add(-time.Duration(rl.config.Window) * time.Second)

	// zset como janela deslizante: score e member são o timestamp
	client := redis.Client()
	pipe := client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))

	pipe.ZAdd(ctx, key, redislib.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})

	zcardCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, time.Duration(rl.config.Window+10)*time.Second)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcardCmd.Val())
	allowed := count <= rl.config.MaxRequests

	return allowed, count, nil
}

func (rl *RateLimiter) Block(ctx context.Context, c *app.RequestContext) error {
	key := redis.Key(rl.config.KeyPrefix+":block", rl.getKey(ctx, c))
	return redis.Client().Set(ctx, key, "1", time.Duration(rl.config.BlockDuration)*time.Second).Err()
}

func (rl *RateLimiter) IsBlocked(ctx context.Context, c *app.RequestContext) (bool, error) {
	key := redis.Key(rl.config.KeyPrefix+":block", rl.getKey(ctx, c))
	result, err := redis.Client().Exists(ctx, key).Result()
	return result > 0, err
}

// RateLimitMiddleware monta o middleware a partir de uma configuração.
func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		blocked, err := limiter.IsBlocked(ctx, c)
		if err != nil {
			logger.Logger.Error("Failed to check block status", zap.Error(err))
			c.AbortWithStatus(consts.StatusInternalServerError)
			return
		}

		if blocked {
			c.Abort()
			response.Error(ctx, c, pkgerrors.AuthRateLimited)
			return
		}

		allowed, count, err := limiter.Allow(ctx, c)
		if err != nil {
			logger.Logger.Error("Failed to check rate limit", zap.Error(err))
			c.AbortWithStatus(consts.StatusInternalServerError)
			return
		}

		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(config.MaxRequests-count))
		c.Response.Header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(config.Window)*time.Second).Unix(), 10))

		if !allowed {
			if err := limiter.Block(ctx, c); err != nil {
				logger.Logger.Error("Failed to block client", zap.Error(err))
			}

			c.Abort()
			response.Error(ctx, c, pkgerrors.AuthRateLimited)
			return
		}

		c.Next(ctx)
	}
}

// AuthRateLimitMiddleware limita login, refresh e recuperação de senha por
// IP. Desligado por configuração vira um passthrough.
func AuthRateLimitMiddleware() app.HandlerFunc {
	if !config.Cfg.RateLimitEnabled {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}

	cfg := RateLimitConfig{
		Window:        60,
		MaxRequests:   config.Cfg.RateLimitRPS,
		KeyPrefix:     "rate:auth",
		ByUserID:      false,
		ByIP:          true,
		BlockDuration: 900,
	}
	return RateLimitMiddleware(cfg)
}

// AdminRateLimitMiddleware limita as tentativas de senha administrativa,
// janela curta e bloqueio longo.
func AdminRateLimitMiddleware() app.HandlerFunc {
	if !config.Cfg.RateLimitEnabled {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}

	cfg := RateLimitConfig{
		Window:        60,
		MaxRequests:   5,
		KeyPrefix:     "rate:admin",
		ByUserID:      false,
		ByIP:          true,
		BlockDuration: 1800,
	}
	return RateLimitMiddleware(cfg)
}
