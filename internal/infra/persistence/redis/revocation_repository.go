// Package redis keeps the bearer-token revocation list in Redis, where key expiry
// removes entries once the token would have expired anyway.
package redis

import (
	"context"
	"log/slog"
	"time"

	"survey/config"
	"survey/internal/domain/entity"
	domainerrors "survey/internal/domain/errors"
	"survey/internal/domain/lifecycle"
	"survey/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const revokedKeyPrefix = "survey:revoked:"

// client is the subset of go-redis the revocation list uses.
type client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Exists(ctx context.Context, keys ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type revocationRepository struct {
	client client
	now    func() time.Time
}

// NewRevocationRepository connects to redis.addr and registers the client with the app lifecycle.
func NewRevocationRepository(params Params) (repository.RevocationRepository, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis.addr must be provided")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Token revocation list backed by redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return newRevocationRepository(rdb), nil
}

func newRevocationRepository(c client) *revocationRepository {
	return &revocationRepository{client: c, now: time.Now}
}

// Revoke stores jti with a TTL matching the token's remaining lifetime. Tokens that
// have already expired need no entry.
func (repo *revocationRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	ttl := token.ExpiresAt.Sub(repo.now())
	if ttl <= 0 {
		return nil
	}

	if err := repo.client.Set(ctx, revokedKeyPrefix+token.JTI, "1", ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked reports whether jti is on the list.
func (repo *revocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := repo.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check token revocation")
	}

	return n > 0, nil
}

// DeleteExpired is a no-op: redis expires entries on its own.
func (repo *revocationRepository) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
