package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	selectSnapshotQuery = `SELECT body FROM snapshots WHERE name = $1`

	// Transaction-scoped lock keyed by collection name; held even while the
	// row does not exist yet.
	lockSnapshotQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

	upsertSnapshotQuery = `
		INSERT INTO snapshots (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = NOW()
	`
)

type snapshotStoreImpl struct {
	conn database.Conn
}

// NewSnapshotStore stores each collection as one jsonb row of the snapshots table.
func NewSnapshotStore(conn database.Conn) snapshot.Store {
	return &snapshotStoreImpl{conn: conn}
}

// Get implements snapshot.Store.
func (s *snapshotStoreImpl) Get(ctx context.Context, name snapshot.Collection) (json.RawMessage, error) {
	return s.get(ctx, GetQuerier(ctx, s.conn), name)
}

// Put implements snapshot.Store.
func (s *snapshotStoreImpl) Put(ctx context.Context, name snapshot.Collection, body json.RawMessage) error {
	return s.Update(ctx, name, func(json.RawMessage) (json.RawMessage, error) {
		return body, nil
	})
}

// Update implements snapshot.Store.
func (s *snapshotStoreImpl) Update(ctx context.Context, name snapshot.Collection, fn func(json.RawMessage) (json.RawMessage, error)) error {
	return WithTransaction(ctx, s.conn, func(ctx context.Context) error {
		q := GetQuerier(ctx, s.conn)

		if _, err := q.Exec(ctx, lockSnapshotQuery, string(name)); err != nil {
			return fmt.Errorf("lock snapshot %s: %w", name, err)
		}

		current, err := s.get(ctx, q, name)
		if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		if _, err := q.Exec(ctx, upsertSnapshotQuery, string(name), []byte(next)); err != nil {
			return fmt.Errorf("save snapshot %s: %w", name, err)
		}

		return nil
	})
}

func (s *snapshotStoreImpl) get(ctx context.Context, q database.Querier, name snapshot.Collection) (json.RawMessage, error) {
	var body []byte
	err := q.QueryRow(ctx, selectSnapshotQuery, string(name)).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, snapshot.ErrNotFound
		}
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}

	return body, nil
}
