package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/HenricoTaiete/trabalho-Scar/internal/auth"
	"github.com/HenricoTaiete/trabalho-Scar/internal/config"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
	"github.com/HenricoTaiete/trabalho-Scar/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Token authority; rotating the secret invalidates all issued tokens
	tokens := auth.NewTokenAuthority(
		[]byte(cfg.Auth.SecretKey),
		time.Duration(cfg.Auth.TokenExpireMinutes)*time.Minute,
	)

	userRepo := repository.NewUserRepository(db, logger)
	tagRepo := repository.NewRFIDTagRepository(db, logger)

	srv := server.NewServer(userRepo, tagRepo, tokens, logger)
	srv.Run(cfg.Server.Port)
}
