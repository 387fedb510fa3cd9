package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/petscare/petscare_backend/config"
	"github.com/petscare/petscare_backend/internal/repo"
	"github.com/petscare/petscare_backend/pkg/authorize"
	"github.com/petscare/petscare_backend/pkg/database"
	"github.com/petscare/petscare_backend/pkg/email"
	"github.com/petscare/petscare_backend/pkg/observability"
	"github.com/petscare/petscare_backend/pkg/realtime"
	redispkg "github.com/petscare/petscare_backend/pkg/redis"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideTokenManager),
	fx.Provide(ProvideRealtimeHub),
	fx.Provide(ProvideOTel),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Database.Migrations.AutoMigrate {
				slog.Info("running schema migrations")
				return database.MigrateEnt(ctx, client)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	dsn := database.NewDSN(cfg.CasbinDatabase)
	enforcer, cleanup, err := authorize.NewEnforcer(dsn)
	if err != nil {
		return nil, err
	}
	auth, err := authorize.NewAuthorization(enforcer, cfg.Authorization.SuperadminBypass)
	if err != nil {
		cleanup(context.Background())
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("cleaning up Casbin enforcer")
			cleanup(ctx)
			return nil
		},
	})
	return auth, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	client, err := email.NewFromCentral(cfg.Email)
	if err != nil {
		return nil, err
	}
	if !client.Enabled() {
		slog.Warn("email transport disabled; status emails will be skipped")
	}
	return client, nil
}

func ProvideTokenManager(cfg *config.Config) (*jwttoken.Manager, error) {
	return jwttoken.NewManager(cfg)
}

func ProvideRealtimeHub(lc fx.Lifecycle, cfg *config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime.SendBufferSize, slog.Default())
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing realtime hub")
			hub.Close()
			return nil
		},
	})
	return hub
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
