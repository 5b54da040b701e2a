package redis

import (
	"context"
	"fmt"

	"wallet-engine/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// clientName tags the engine's connections in CLIENT LIST.
const clientName = "wallet-engine"

// NewClient connects the client shared by the price cache, idempotency
// cache, in-flight reservations and rate limiter. It fails fast when the
// server does not answer PING, since main only enables Redis on request.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis cache store ready")

	return client, nil
}
