package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]snapshot.Store {
	local, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return map[string]snapshot.Store{
		"memory": NewMemoryStorage(),
		"local":  local,
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), snapshot.CollectionUsers)
			assert.ErrorIs(t, err, snapshot.ErrNotFound)
		})
	}
}

func TestStore_PutThenGet(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			body := json.RawMessage(`{"users":[{"id":"1"}]}`)

			require.NoError(t, s.Put(ctx, snapshot.CollectionUsers, body))

			got, err := s.Get(ctx, snapshot.CollectionUsers)
			require.NoError(t, err)
			assert.JSONEq(t, string(body), string(got))
		})
	}
}

func TestStore_UpdateFailureWritesNothing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Put(ctx, snapshot.CollectionTimesheets, json.RawMessage(`{"timesheets":[]}`)))

			boom := errors.New("boom")
			err := s.Update(ctx, snapshot.CollectionTimesheets, func(json.RawMessage) (json.RawMessage, error) {
				return nil, boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := s.Get(ctx, snapshot.CollectionTimesheets)
			require.NoError(t, err)
			assert.JSONEq(t, `{"timesheets":[]}`, string(got))
		})
	}
}

func TestStore_UpdateIsSerialized(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Put(ctx, snapshot.CollectionAttendance, json.RawMessage(`0`)))

			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := s.Update(ctx, snapshot.CollectionAttendance, func(cur json.RawMessage) (json.RawMessage, error) {
						var n int
						if err := json.Unmarshal(cur, &n); err != nil {
							return nil, err
						}
						return json.Marshal(n + 1)
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			got, err := s.Get(ctx, snapshot.CollectionAttendance)
			require.NoError(t, err)
			assert.Equal(t, "50", string(got))
		})
	}
}

func TestLocalStorage_WritesOneFilePerCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), snapshot.CollectionApprovalPolicy, json.RawMessage(`{"whoCanApprove":[]}`)))

	body, err := os.ReadFile(filepath.Join(dir, "timesheetApprovalConfig.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"whoCanApprove":[]}`, string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLocalStorage_RejectsEscapingNames(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = s.Put(context.Background(), snapshot.Collection("../outside"), json.RawMessage(`{}`))
	assert.Error(t, err)
}
