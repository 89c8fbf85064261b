// Command seed provisions the initial admin account. Registration through
// the API always yields editors, so the first admin must be created
// out-of-band. Safe to run repeatedly: an existing account is left alone.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/brunosduarte/sindestiva-api/internal/auth"
	"github.com/brunosduarte/sindestiva-api/internal/config"
	"github.com/brunosduarte/sindestiva-api/internal/domain"
	"github.com/brunosduarte/sindestiva-api/internal/infrastructure/database"
	"github.com/brunosduarte/sindestiva-api/internal/logger"
	"github.com/brunosduarte/sindestiva-api/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	adminEmail := getRequiredEnv("ADMIN_EMAIL")
	adminName := getRequiredEnv("ADMIN_NAME")
	adminPassword := getRequiredEnv("ADMIN_PASSWORD")

	ctx := context.Background()
	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	users := repository.NewPostgresUserRepository(pool)

	existing, err := users.FindByEmail(ctx, adminEmail)
	if err != nil {
		logger.Fatal("Failed to look up admin account",
			slog.String("error", err.Error()))
	}
	if existing != nil {
		logger.Info("Admin account already exists",
			slog.String("user_id", existing.ID))
		return
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		logger.Fatal("Failed to hash admin password",
			slog.String("error", err.Error()))
	}

	admin, err := users.Create(ctx, &domain.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		logger.Fatal("Failed to create admin account",
			slog.String("error", err.Error()))
	}

	logger.Info("Admin account created",
		slog.String("user_id", admin.ID),
		slog.String("email", admin.Email))
}

func getRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Fatal("Missing required environment variable",
			slog.String("key", key))
	}
	return value
}
