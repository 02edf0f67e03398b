package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/config"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store/jsonfile"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store/pgstore"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store/redisstore"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// Storage holds the two collections of the configured backend.
type Storage struct {
	Destinations store.Collection[domain.Destination]
	Bookings     store.Collection[domain.Booking]

	closers []func() error
}

func OpenStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		log.LogAttrs(ctx, logger.InfoLevel, "using json file storage",
			logger.String("data_dir", cfg.Storage.DataDir),
		)
		return &Storage{
			Destinations: jsonfile.New[domain.Destination](cfg.Storage.DestinationsFile()),
			Bookings:     jsonfile.New[domain.Booking](cfg.Storage.BookingsFile()),
		}, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("pinging redis: %w", err)
		}

		log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
			logger.String("addr", cfg.Redis.Addr),
			logger.Int("db", cfg.Redis.DB),
		)
		return &Storage{
			Destinations: redisstore.New[domain.Destination](client, cfg.Redis.KeyPrefix+"destinations"),
			Bookings:     redisstore.New[domain.Booking](client, cfg.Redis.KeyPrefix+"bookings"),
			closers:      []func() error{client.Close},
		}, nil

	case config.DriverPostgres:
		db, sqlxDB, err := pgstore.Open(ctx, cfg.Postgres.DSN(), pgstore.Options{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
			MigrationsDir:   cfg.Postgres.MigrationsDir,
		})
		if err != nil {
			return nil, err
		}

		log.LogAttrs(ctx, logger.InfoLevel, "database connected",
			logger.String("host", cfg.Postgres.Host),
			logger.Int("port", cfg.Postgres.Port),
			logger.String("database", cfg.Postgres.Database),
		)
		return &Storage{
			Destinations: pgstore.NewDestinations(sqlxDB),
			Bookings:     pgstore.NewBookings(sqlxDB),
			closers:      []func() error{db.Master.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (s *Storage) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
