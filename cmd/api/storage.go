package main

import (
	"context"
	"fmt"
	"time"

	"catalog/config"
	"catalog/internal/item/repository"
	itemMemory "catalog/internal/item/repository/memory"
	itemMongo "catalog/internal/item/repository/mongo"
	itemPostgre "catalog/internal/item/repository/postgre"
	itemRedis "catalog/internal/item/repository/redis"
	"catalog/pkg/log"
	pkgMongo "catalog/pkg/mongo"
	pkgPostgres "catalog/pkg/postgres"
	pkgRedis "catalog/pkg/redis"
)

const closeTimeout = 5 * time.Second

// openRepository connects the configured store and returns the item
// repository over it plus a func that closes the connection.
func openRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "✅ MongoDB connected (database=%s collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)
		closeFn := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				l.Warnf(closeCtx, "MongoDB disconnect: %v", err)
			}
		}
		return itemMongo.New(client.Database(), cfg.Mongo.Collection, cfg.Storage.OperationTimeout, l), closeFn, nil

	case config.DriverPostgres:
		db, err := pkgPostgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := itemPostgre.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		l.Info(ctx, "✅ PostgreSQL connected")
		closeFn := func() {
			if err := db.Close(); err != nil {
				l.Warnf(context.Background(), "PostgreSQL close: %v", err)
			}
		}
		return itemPostgre.New(db, l), closeFn, nil

	case config.DriverRedis:
		client, err := pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "✅ Redis connected (%s)", cfg.Redis.Addr)
		closeFn := func() {
			if err := client.Close(); err != nil {
				l.Warnf(context.Background(), "Redis close: %v", err)
			}
		}
		return itemRedis.New(client, l), closeFn, nil

	case config.DriverMemory:
		l.Warn(ctx, "Using in-memory store; data is lost on restart")
		return itemMemory.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
