package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
)

var errMalformed = errors.New("malformed snapshot document")

// collection is a typed view of one snapshot document shaped as
// {"<name>": [...]}. A document that is missing or cannot be decoded is
// replaced by the bundled defaults.
type collection[T any] struct {
	store    snapshot.Store
	name     snapshot.Collection
	defaults func() []T
}

func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.name)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			slog.Debug("snapshot missing, using bundled defaults", "collection", c.name)
			return c.defaults(), nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", c.name, err)
	}

	return c.decode(raw), nil
}

// update runs fn over the current items and persists what it returns.
func (c collection[T]) update(ctx context.Context, fn func([]T) ([]T, error)) error {
	return c.store.Update(ctx, c.name, func(current json.RawMessage) (json.RawMessage, error) {
		items := c.defaults()
		if current != nil {
			items = c.decode(current)
		}

		next, err := fn(items)
		if err != nil {
			return nil, err
		}

		return c.encode(next)
	})
}

func (c collection[T]) decode(raw json.RawMessage) []T {
	items, err := c.unmarshal(raw)
	if err != nil {
		slog.Warn("snapshot corrupt, using bundled defaults", "collection", c.name, "error", err)
		return c.defaults()
	}
	return items
}

func (c collection[T]) unmarshal(raw json.RawMessage) ([]T, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	body, ok := doc[string(c.name)]
	if !ok {
		return nil, fmt.Errorf("%w: key %q absent", errMalformed, c.name)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c collection[T]) encode(items []T) (json.RawMessage, error) {
	if items == nil {
		items = []T{}
	}
	body, err := json.Marshal(map[string][]T{string(c.name): items})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	return body, nil
}
