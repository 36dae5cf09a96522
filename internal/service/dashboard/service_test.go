package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPolicy struct{}

func (staticPolicy) Current(context.Context) (policy.ApprovalPolicy, error) { return policy.Default(), nil }
func (staticPolicy) Reload(context.Context) error                           { return nil }

type brokenStore struct{ snapshot.Store }

func (brokenStore) Get(context.Context, snapshot.Collection) (json.RawMessage, error) {
	return nil, errors.New("connection refused")
}

func as(role user.Role) context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "2", Name: "Sarah Manager", Role: role})
}

func TestGetDashboard(t *testing.T) {
	store := storage.NewMemoryStorage()
	now := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	svc := NewDashboardService(
		document.NewUserRepository(store),
		document.NewAttendanceRepository(store),
		document.NewTimesheetRepository(store),
		staticPolicy{},
		time.UTC,
		func() time.Time { return now },
	)

	resp, err := svc.GetDashboard(as(user.RoleManager))
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Stats.TotalUsers)
	assert.Equal(t, 5, resp.Stats.ActiveUsers)
	assert.Equal(t, 4, resp.Stats.TodayClockIns)
	assert.Equal(t, 2, resp.Stats.PendingTimesheets)
	assert.InDelta(t, 40.0, resp.Stats.ApprovedHoursTotal, 0.001)
	assert.Equal(t, "2024-01-16", resp.Stats.Date)

	assert.Len(t, resp.RecentActivity, 5)
	require.Len(t, resp.PendingTimesheets, 2)
	for _, ts := range resp.PendingTimesheets {
		assert.Equal(t, "submitted", ts.Status)
		assert.Equal(t, []string{"approve", "decline"}, ts.Actions)
	}
}

func TestGetDashboard_RequiresManager(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewDashboardService(
		document.NewUserRepository(store),
		document.NewAttendanceRepository(store),
		document.NewTimesheetRepository(store),
		staticPolicy{},
		nil,
		nil,
	)

	_, err := svc.GetDashboard(as(user.RoleEmployee))
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestGetDashboard_StoreFailure(t *testing.T) {
	store := brokenStore{}
	svc := NewDashboardService(
		document.NewUserRepository(store),
		document.NewAttendanceRepository(store),
		document.NewTimesheetRepository(store),
		staticPolicy{},
		nil,
		nil,
	)

	_, err := svc.GetDashboard(as(user.RoleSuperAdmin))
	assert.ErrorContains(t, err, "connection refused")
}
