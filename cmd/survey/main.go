package main

import (
	"context"
	"log/slog"
	"os"

	"survey/config"
	"survey/internal/delivery"
	"survey/internal/delivery/http"
	"survey/internal/delivery/http/middleware"
	"survey/internal/delivery/http/router/handler"
	"survey/internal/delivery/http/session"
	"survey/internal/delivery/worker"
	"survey/internal/domain/repository"
	"survey/internal/infra/auth"
	"survey/internal/infra/auth/oauth"
	logs "survey/internal/infra/log"
	"survey/internal/infra/persistence/postgres"
	"survey/internal/infra/persistence/redis"
	"survey/internal/infra/pubsub"
	"survey/internal/infra/qrcode"
	"survey/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSurveyRepository,
			postgres.NewResponseRepository,
			postgres.NewSessionRepository,
			newRevocationRepository,
			postgres.NewTransactionManager,
		),
	)
}

type revocationParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// newRevocationRepository picks the revocation list backend from revocation.provider.
func newRevocationRepository(params revocationParams) (repository.RevocationRepository, error) {
	provider := config.RevocationProviderPostgres
	if params.Config.Revocation != nil && params.Config.Revocation.Provider != "" {
		provider = params.Config.Revocation.Provider
	}

	switch provider {
	case config.RevocationProviderPostgres:
		return postgres.NewRevocationRepository(params.DB), nil
	case config.RevocationProviderRedis:
		return redis.NewRevocationRepository(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	default:
		return nil, errors.Errorf("unknown revocation provider: %s", provider)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewProviders,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewSurveyService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOAuthHandler,
			handler.NewSurveyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
