package document

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every call with err.
type failingStore struct{ err error }

func (s failingStore) Get(context.Context, snapshot.Collection) (json.RawMessage, error) {
	return nil, s.err
}

func (s failingStore) Put(context.Context, snapshot.Collection, json.RawMessage) error {
	return s.err
}

func (s failingStore) Update(context.Context, snapshot.Collection, func(json.RawMessage) (json.RawMessage, error)) error {
	return s.err
}

func TestUserRepository_FallsBackWhenMissing(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStorage())

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixtures.GetDefaultUsers(), users)

	u, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, u.Role)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_FallsBackWhenCorrupt(t *testing.T) {
	ctx := context.Background()

	for name, body := range map[string]string{
		"not json":   `{"users": [`,
		"wrong key":  `{"records": []}`,
		"wrong type": `{"users": "everyone"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStorage()
			require.NoError(t, store.Put(ctx, snapshot.CollectionUsers, json.RawMessage(body)))

			users, err := NewUserRepository(store).List(ctx)
			require.NoError(t, err)
			assert.Equal(t, fixtures.GetDefaultUsers(), users)
		})
	}
}

func TestUserRepository_Mutations(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storage.NewMemoryStorage())

	created, err := repo.Create(ctx, user.User{ID: "7", Name: "Budi", Email: "budi@company.com", Role: user.RoleEmployee, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)

	_, err = repo.Create(ctx, user.User{ID: "8", Name: "Copy", Email: "ADMIN@company.com"})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	updated, err := repo.Update(ctx, "7", func(u user.User) (user.User, error) {
		u.Branch = "Bandung"
		u.ID = "overwritten"
		return u, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "7", updated.ID)
	assert.Equal(t, "Bandung", updated.Branch)

	_, err = repo.Update(ctx, "7", func(u user.User) (user.User, error) {
		u.Email = "sarah@company.com"
		return u, nil
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = repo.Update(ctx, "missing", func(u user.User) (user.User, error) { return u, nil })
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	veto := errors.New("veto")
	err = repo.Delete(ctx, "7", func(user.User) error { return veto })
	assert.ErrorIs(t, err, veto)

	require.NoError(t, repo.Delete(ctx, "7", nil))
	_, err = repo.GetByID(ctx, "7")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(fixtures.GetDefaultUsers()))

	assert.ErrorIs(t, repo.Delete(ctx, "missing", nil), user.ErrUserNotFound)
}

func TestUserRepository_ReadsStoredDocument(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Put(ctx, snapshot.CollectionUsers, json.RawMessage(
		`{"users":[{"id":"9","name":"Dewi","role":"employee","branch":"Bandung","isActive":true}]}`,
	)))

	users, err := NewUserRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Dewi", users[0].Name)
	assert.True(t, users[0].IsActive)
}

func TestRepository_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	store := failingStore{err: boom}

	_, err := NewUserRepository(store).List(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewPolicyRepository(store, policy.Default()).Get(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestTimesheetRepository_UpdatePersistsWholeSnapshot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	repo := NewTimesheetRepository(store)

	updated, err := repo.Update(ctx, "4", func(ts timesheet.Timesheet) (timesheet.Timesheet, error) {
		ts.State = timesheet.StateSubmitted
		return ts, nil
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateSubmitted, updated.State)

	raw, err := store.Get(ctx, snapshot.CollectionTimesheets)
	require.NoError(t, err)

	var doc struct {
		Timesheets []timesheet.Timesheet `json:"timesheets"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Timesheets, len(fixtures.GetDefaultTimesheets()))

	got, err := repo.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StateSubmitted, got.State)
}

func TestTimesheetRepository_UpdateFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	repo := NewTimesheetRepository(store)

	_, err := repo.Update(ctx, "2", func(ts timesheet.Timesheet) (timesheet.Timesheet, error) {
		return ts, timesheet.ErrUnauthorized
	})
	assert.ErrorIs(t, err, timesheet.ErrUnauthorized)

	_, err = store.Get(ctx, snapshot.CollectionTimesheets)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	_, err = repo.Update(ctx, "missing", func(ts timesheet.Timesheet) (timesheet.Timesheet, error) {
		return ts, nil
	})
	assert.ErrorIs(t, err, timesheet.ErrTimesheetNotFound)
}

func TestAttendanceRepository_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(storage.NewMemoryStorage())

	created, err := repo.Create(ctx, attendance.Record{ID: "new", UserID: "3", Date: "2024-02-01", ClockIn: "08:00", Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.Equal(t, "new", created.ID)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, len(fixtures.GetDefaultAttendance())+1)
	assert.Equal(t, "new", records[len(records)-1].ID)

	out := "17:00"
	updated, err := repo.Update(ctx, "new", func(r attendance.Record) (attendance.Record, error) {
		r.ClockOut = &out
		r.ID = "renamed"
		return r, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.ID, "id is immutable")
	assert.Equal(t, &out, updated.ClockOut)

	_, err = repo.Update(ctx, "missing", func(r attendance.Record) (attendance.Record, error) { return r, nil })
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestPolicyRepository(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	seed := policy.ApprovalPolicy{WhoCanApprove: []user.Role{user.RoleSuperAdmin}, RequireSubmission: true}
	repo := NewPolicyRepository(store, seed)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	next := policy.ApprovalPolicy{
		WhoCanApprove: []user.Role{user.RoleManager},
		WhoCanReopen:  []user.Role{user.RoleSuperAdmin, user.RoleManager},
	}
	require.NoError(t, repo.Save(ctx, next))

	raw, err := store.Get(ctx, snapshot.CollectionApprovalPolicy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"whoCanApprove":["manager"],"whoCanReopen":["super_admin","manager"],"requireSubmit":false}`, string(raw))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	require.NoError(t, store.Put(ctx, snapshot.CollectionApprovalPolicy, json.RawMessage(`not json`)))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}
