// Package repository opens the snapshot store selected by configuration.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/postgresql"
)

// OpenStore returns the store for cfg.Storage.Type and a func releasing it.
// The release func is never nil when err is nil.
func OpenStore(ctx context.Context, cfg *config.Config) (snapshot.Store, func(), error) {
	switch cfg.Storage.Type {
	case config.StorageTypePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgresql.NewSnapshotStore(db), db.Close, nil
	case config.StorageTypeLocal:
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local storage: %w", err)
		}
		return local, func() {}, nil
	case config.StorageTypeMemory:
		slog.Warn("using in-memory storage, changes are lost on restart")
		return storage.NewMemoryStorage(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type: %q", cfg.Storage.Type)
	}
}
