package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/ellavondegurechaff/godcs/dcslist"
	"github.com/ellavondegurechaff/godcs/dcslist/database"
	"github.com/ellavondegurechaff/godcs/dcslist/database/repositories"
	"github.com/ellavondegurechaff/godcs/dcslist/directory"
	"github.com/ellavondegurechaff/godcs/dcslist/logger"
	"github.com/ellavondegurechaff/godcs/dcslist/services"
	"github.com/ellavondegurechaff/godcs/web/handlers"
	"github.com/ellavondegurechaff/godcs/web/middleware"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("DCS")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting DCS directory API",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	// Optional .env for local development; secrets override the toml.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	cfg, err := dcslist.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	dbStartTime := time.Now()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitTables(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	// Repositories
	serverRepo := repositories.NewServerRepository(db.BunDB())
	voteRepo := repositories.NewVoteRepository(db.BunDB())
	itemRepo := repositories.NewShopItemRepository(db.BunDB())
	purchaseRepo := repositories.NewPurchaseRepository(db.BunDB())
	roleRepo := repositories.NewUserRoleRepository(db.BunDB())

	// Domain services
	txManager := directory.NewTxManager(db.BunDB())
	dcsService := services.NewDcsService(cfg.Dcs.BaseURL)
	notifier := services.NewWebhookNotifier()

	listings := directory.NewListingService(serverRepo, roleRepo, dcsService, notifier)
	votes := directory.NewVoteService(serverRepo, voteRepo, txManager)
	shop := directory.NewShopService(serverRepo, itemRepo, purchaseRepo, txManager)
	admin := directory.NewAdminService(serverRepo, roleRepo)

	sweepInterval := time.Duration(cfg.Sweep.IntervalMinutes) * time.Minute
	sweeper := directory.NewSweeper(txManager, sweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	avatars, err := services.NewAvatarService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.AvatarRoot,
	)
	if err != nil {
		slog.Error("Failed to initialize avatar storage", slog.Any("error", err))
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:      "DCS Directory API",
		ServerHeader: "DCS",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	webApp := &handlers.WebApp{
		DB:       db,
		Listings: listings,
		Votes:    votes,
		Shop:     shop,
		Admin:    admin,
		Sweeper:  sweeper,
		Dcs:      dcsService,
		Avatars:  avatars,
		Version:  version,
	}

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret)
	handlers.RegisterRoutes(app, webApp, auth)

	address := fmt.Sprintf(":%s", cfg.Server.Port)
	slog.Info("Starting server", slog.String("address", address))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-sig
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	slog.Info("Shutdown complete")
}
