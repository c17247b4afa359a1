package main

import (
	"context"
	"time"

	"github.com/rcondori/saltenas-erp-api/infrastructure/database/postgres"
	"github.com/rcondori/saltenas-erp-api/infrastructure/migration"
	"github.com/rcondori/saltenas-erp-api/infrastructure/repository"
	"github.com/rcondori/saltenas-erp-api/internal/api"
	"github.com/rcondori/saltenas-erp-api/internal/config"
	"github.com/rcondori/saltenas-erp-api/internal/scheduler"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/authenticating"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/inventorying"
	"github.com/rcondori/saltenas-erp-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.App.MigrateOnStartup {
		if err := migration.Run(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Error aplicando migraciones")
		}
		logrus.Info("Migraciones aplicadas con éxito")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productoRepo := repository.NewProductoRepository(pgConn)
	movimientoRepo := repository.NewMovimientoRepository(pgConn)

	inventoryService := inventorying.NewService(productoRepo, movimientoRepo)
	reportingService := reporting.NewService(movimientoRepo)
	authenticator := authenticating.NewService(cfg)

	lowStockCheckService := scheduler.NewLowStockCheckService(productoRepo, cfg)
	if err := lowStockCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error iniciando el cron de chequeo de stock bajo")
	}

	server, err := api.New(
		cfg,
		inventoryService,
		reportingService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato de los logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error conectando a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error probando la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
