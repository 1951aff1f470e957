package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinica/appointments-api/internal/config"
	dbpkg "github.com/clinica/appointments-api/internal/db"
	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/infra/cache"
	"github.com/clinica/appointments-api/internal/infra/repository"
)

// Stores groups one backend's repositories.
type Stores struct {
	Users        user.Repository
	Centers      center.Repository
	Appointments domain.Repository

	closers []func(context.Context) error
}

// Open builds the repositories for cfg.StoreDriver and, when REDIS_URL is
// set, puts the center cache in front of the registry.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Stores, error) {
	s := &Stores{}

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		gdb, err := dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		s.closers = append(s.closers, func(context.Context) error { return sqlDB.Close() })

		s.Users = repository.NewUserGormRepository(gdb)
		s.Centers = repository.NewCenterGormRepository(gdb)
		s.Appointments = repository.NewAppointmentGormRepository(gdb)

	case config.DriverMongo:
		client, database, err := dbpkg.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)

		s.Users = repository.NewUserMongoRepository(database)
		s.Centers = repository.NewCenterMongoRepository(database)
		s.Appointments = repository.NewAppointmentMongoRepository(database)

	case config.DriverMemory:
		mem := repository.NewMemoryStore()
		if _, err := mem.SeedCenters(ctx, center.Defaults); err != nil {
			return nil, err
		}
		s.Users = mem
		s.Centers = mem
		s.Appointments = mem

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	cached := false
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// the cache is optional; run without it
			log.Warn("redis unavailable, center cache disabled", zap.Error(err))
		} else {
			s.closers = append(s.closers, func(context.Context) error { return client.Close() })
			s.Centers = cache.NewCenterCache(s.Centers, client, cfg.CenterCacheTTL, log)
			cached = true
		}
	}

	log.Info("store ready",
		zap.String("driver", cfg.StoreDriver),
		zap.Bool("center_cache", cached),
	)
	return s, nil
}

func (s *Stores) Close(ctx context.Context) error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
