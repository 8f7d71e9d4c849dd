package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/diabetes-tracker/internal/bot"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/handlers"
	"github.com/vladimiradmaev/diabetes-tracker/internal/bot/state"
	"github.com/vladimiradmaev/diabetes-tracker/internal/cache"
	"github.com/vladimiradmaev/diabetes-tracker/internal/config"
	"github.com/vladimiradmaev/diabetes-tracker/internal/database"
	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
	"github.com/vladimiradmaev/diabetes-tracker/internal/repository"
	"github.com/vladimiradmaev/diabetes-tracker/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	defer logger.Close()
	logger.Info("Starting Diabetes Tracker Bot...", "db_driver", cfg.DB.Driver)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	var (
		store        cache.Store
		stateManager state.StateManager
	)
	if cfg.Redis.Enabled() {
		client, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "addr", cfg.Redis.Addr(), "error", err)
		}
		defer client.Close()
		store = cache.NewRedisStore(client)
		stateManager = state.NewRedisManager(client)
		logger.Info("Using Redis for cache and bot state", "addr", cfg.Redis.Addr())
	} else {
		store = cache.NewMemoryStore()
		stateManager = state.NewManager()
		logger.Info("Using in-memory cache and bot state")
	}
	queryCache := cache.New(store)

	deps := handlers.Dependencies{
		UserService: services.NewUserService(repository.NewUserRepository(db)),
		ReadingSvc:  services.NewReadingService(repository.NewReadingRepository(db), queryCache, cfg.Readings),
		MedicineSvc: services.NewMedicineService(repository.NewMedicineRepository(db), queryCache, cfg.Readings),
		DoctorSvc:   services.NewDoctorService(repository.NewDoctorRepository(db), queryCache, cfg.Doctors),
		WindowDays:  int(cfg.Readings.Window / (24 * time.Hour)),
		Location:    cfg.Display.Location,
	}
	logger.Info("Services initialized successfully")

	telegramBot, err := bot.NewBot(cfg.TelegramToken, deps, stateManager)
	if err != nil {
		logger.Fatal("Failed to create bot", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Bot stopped with error", "error", err)
			stop()
		}
	}()

	logger.Info("Bot is running. Press Ctrl+C to stop.")
	wg.Wait()
	logger.Info("Bot stopped")
}
