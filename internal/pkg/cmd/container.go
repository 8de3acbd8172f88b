package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	commonhttp "github.com/klwxsrx/securite-service/internal/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/cmd"
	"github.com/klwxsrx/securite-service/pkg/env"
	"github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/lazy"
	"github.com/klwxsrx/securite-service/pkg/log"
	"github.com/klwxsrx/securite-service/pkg/observability"
	"github.com/klwxsrx/securite-service/pkg/sql"
	pkgtime "github.com/klwxsrx/securite-service/pkg/time"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Validator         lazy.Loader[validation.Validator]
	Clock             lazy.Loader[pkgtime.Clock]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, logger),
		DBMigrations:      dbMigrations,
		DB:                db,
		Validator:         validatorProvider(),
		Clock:             clockProvider(),
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(logger.MustLoad()), nil
	})
}

func validatorProvider() lazy.Loader[validation.Validator] {
	return lazy.New(func() (validation.Validator, error) {
		return validation.New(), nil
	})
}

func clockProvider() lazy.Loader[pkgtime.Clock] {
	return lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewAdjustableClock(), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 2)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress))
		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithJSONNotFound(),
			http.WithCORSHandler(),
			http.WithObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
