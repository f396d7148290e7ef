package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/kvstore"
	"github.com/dwikikusuma/storefront/pkg/postgres"
)

// openStore builds the key-value store named by STORAGE_DRIVER. The returned
// func releases it.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (kvstore.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kvstore.NewMemory(), noop, nil

	case config.StorageFile:
		s, err := kvstore.NewFile(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using file storage", slog.String("path", cfg.StoragePath))
		return s, noop, nil

	case config.StoragePostgres:
		db, err := postgres.Open(postgres.Config{
			Host: cfg.Postgres.Host,
			Port: cfg.Postgres.Port,
			User: cfg.Postgres.User,
			Pass: cfg.Postgres.Pass,
			DB:   cfg.Postgres.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		s, err := kvstore.NewPostgres(db, cfg.StorageTable)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("using postgres storage", slog.String("host", cfg.Postgres.Host), slog.String("table", cfg.StorageTable))
		return s, func() { _ = s.Close() }, nil

	case config.StorageFirestore:
		s, err := kvstore.OpenFirestore(ctx, cfg.FirestoreProject, cfg.FirestoreCollection, cfg.FirestoreCredentials)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using firestore storage", slog.String("project", cfg.FirestoreProject),
			slog.String("collection", cfg.FirestoreCollection))
		return s, func() { _ = s.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
