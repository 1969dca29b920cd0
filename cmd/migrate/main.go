package main

import (
	"log"

	"tripfinder/cfg"
	"tripfinder/pkg/db"
	"tripfinder/pkg/logger"
)

// Applies the filter_state migrations without starting the server.
func main() {
	// ============
	// Load config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	zlogger := logger.NewZeroLog(config.AppEnv)

	dsn := config.Postgres.DSN()
	if dsn == "" {
		log.Fatal("POSTGRES_HOST not set")
	}

	// =========
	// Migrate
	// =========
	if err := db.Migrate(config.Postgres.MigrationsPath, dsn); err != nil {
		log.Fatal(err)
	}
	zlogger.Info("migrations applied",
		logger.Field{Key: "source", Value: config.Postgres.MigrationsPath},
		logger.Field{Key: "host", Value: config.Postgres.Host},
	)
}
