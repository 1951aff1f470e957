package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/clinica/appointments-api/internal/auth"
	"github.com/clinica/appointments-api/internal/config"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/logging"
	"github.com/clinica/appointments-api/internal/models"
	"github.com/clinica/appointments-api/internal/store"
)

// Opening the store creates the schema and indexes; this then seeds the
// registry and the default account. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	stores, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer stores.Close(ctx)

	seeded, err := stores.Centers.SeedCenters(ctx, center.Defaults)
	if err != nil {
		logger.Fatal("failed to seed centers", zap.Error(err))
	}
	logger.Info("centers", zap.Bool("seeded", seeded))

	if err := seedDefaultUser(ctx, stores); err != nil {
		logger.Fatal("failed to seed default user", zap.Error(err))
	}
	logger.Info("migration done", zap.String("driver", cfg.StoreDriver))
}

func seedDefaultUser(ctx context.Context, stores *store.Stores) error {
	hashed, err := auth.HashPassword("kike1234")
	if err != nil {
		return err
	}

	err = stores.Users.CreateUser(ctx, &models.User{
		Username: "kike",
		Password: hashed,
		Name:     "Kike",
		Lastname: "Acon",
		Email:    "kike@joyfe.com",
		Phone:    "600000000",
		Date:     "01/01/2000",
	})
	if httperr.IsBusiness(err, httperr.CodeUserExists) {
		return nil
	}
	return err
}
