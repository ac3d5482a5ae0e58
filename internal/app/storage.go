package app

import (
	"context"
	"fmt"
	"time"

	"nutrimix/internal/config"
	"nutrimix/internal/repositories"
	"nutrimix/pkg/database"
)

// OpenRepositories connects to the backend selected by cfg.DBDriver and
// returns its adapters together with a function that releases the connection.
func OpenRepositories(cfg config.Config) (Repositories, func() error, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.OpenGORM(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return Repositories{}, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return Repositories{}, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		return Repositories{
			Users:    repositories.NewGORMUserRepository(db),
			Products: repositories.NewGORMProductRepository(db),
			Invoices: repositories.NewGORMInvoiceRepository(db),
			Coupons:  repositories.NewGORMCouponRepository(db),
		}, sqlDB.Close, nil

	case config.DriverMongo:
		client, db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return Repositories{}, nil, err
		}
		closeFn := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
			_ = closeFn()
			return Repositories{}, nil, err
		}
		return Repositories{
			Users:    repositories.NewMongoUserRepository(db),
			Products: repositories.NewMongoProductRepository(db),
			Invoices: repositories.NewMongoInvoiceRepository(db),
			Coupons:  repositories.NewMongoCouponRepository(db),
		}, closeFn, nil

	case config.DriverMemory:
		return MemoryRepositories(), func() error { return nil }, nil
	}
	return Repositories{}, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// MemoryRepositories returns process-local adapters that vanish on exit.
func MemoryRepositories() Repositories {
	return Repositories{
		Users:    repositories.NewMockUserRepository(),
		Products: repositories.NewMockProductRepository(),
		Invoices: repositories.NewMockInvoiceRepository(),
		Coupons:  repositories.NewMockCouponRepository(),
	}
}
