package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ellavondegurechaff/godcs/dcslist"
	"github.com/ellavondegurechaff/godcs/dcslist/database"
	"github.com/ellavondegurechaff/godcs/dcslist/logger"
	"github.com/ellavondegurechaff/godcs/dcslist/migration"
)

func main() {
	customHandler := logger.NewHandler("DCS-Migrate")
	slog.SetDefault(slog.New(customHandler))

	path := flag.String("config", "config.toml", "path to config")
	batchSize := flag.Int("batch-size", 1000, "rows per insert batch")
	sleepMs := flag.Int("sleep-ms", 0, "sleep between batches in milliseconds")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg, err := dcslist.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitTables(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(1)
	}

	client, mongoDB, err := migration.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		slog.Error("Failed to connect to mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(db.BunDB(), mongoDB)
	migrator.SetBatchSize(*batchSize)
	migrator.SetSleepBetween(*sleepMs)
	if cfg.Mongo.Collection != "" {
		migrator.SetCollectionName("servers", cfg.Mongo.Collection)
	}

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
