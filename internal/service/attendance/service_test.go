package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, now time.Time) attendance.AttendanceService {
	t.Helper()
	store := storage.NewMemoryStorage()
	loc := time.FixedZone("WIB", 7*60*60)
	return NewAttendanceService(
		document.NewAttendanceRepository(store),
		document.NewUserRepository(store),
		loc,
		func() time.Time { return now },
	)
}

func as(role user.Role) context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "1", Name: "Admin User", Role: role})
}

func strPtr(s string) *string { return &s }

func TestListAttendance_RequiresManager(t *testing.T) {
	svc := newService(t, time.Now())

	_, err := svc.ListAttendance(as(user.RoleEmployee), attendance.AttendanceQuery{})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = svc.ListAttendance(context.Background(), attendance.AttendanceQuery{})
	assert.ErrorIs(t, err, user.ErrNoSession)
}

func TestListAttendance_AllRecords(t *testing.T) {
	svc := newService(t, time.Now())

	resp, err := svc.ListAttendance(as(user.RoleManager), attendance.AttendanceQuery{Preset: strPtr("all")})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalItems)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, "1-10 of 10 results", resp.Showing)
	assert.Equal(t, []string{"Headquarters", "North Branch", "South Branch"}, resp.Branches)
}

func TestListAttendance_TodayPresetUsesLocation(t *testing.T) {
	// 2024-01-16 20:00 UTC is already 2024-01-17 in Jakarta
	svc := newService(t, time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC))

	resp, err := svc.ListAttendance(as(user.RoleManager), attendance.AttendanceQuery{Preset: strPtr("today")})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalItems)
	for _, item := range resp.Items {
		assert.Equal(t, "2024-01-17", item.Date)
	}
}

func TestListAttendance_SearchAndBranch(t *testing.T) {
	svc := newService(t, time.Now())

	resp, err := svc.ListAttendance(as(user.RoleSuperAdmin), attendance.AttendanceQuery{Search: strPtr("john")})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalItems)

	resp, err = svc.ListAttendance(as(user.RoleSuperAdmin), attendance.AttendanceQuery{Branch: strPtr("North Branch"), Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalItems)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "7", resp.Items[0].ID)

	_, err = svc.ListAttendance(as(user.RoleSuperAdmin), attendance.AttendanceQuery{Preset: strPtr("fortnight")})
	assert.Error(t, err)
}

func TestCreateAttendance(t *testing.T) {
	svc := newService(t, time.Now())
	ctx := as(user.RoleManager)

	created, err := svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{
		UserID:   "4",
		Date:     "2024-01-18",
		ClockIn:  "08:00",
		ClockOut: strPtr("16:20"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Emily Davis", created.UserName)
	assert.Equal(t, "North Branch", created.Branch)
	assert.Equal(t, "present", created.Status)
	assert.InDelta(t, 8.3, created.DurationHours, 0.001)

	resp, err := svc.ListAttendance(ctx, attendance.AttendanceQuery{Date: strPtr("2024-01-18")})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, created.ID, resp.Items[0].ID)

	_, err = svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{UserID: "99", Date: "2024-01-18", ClockIn: "08:00"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = svc.CreateAttendance(as(user.RoleEmployee), attendance.CreateAttendanceRequest{UserID: "4", Date: "2024-01-18", ClockIn: "08:00"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestUpdateAttendance_RecomputesDuration(t *testing.T) {
	svc := newService(t, time.Now())
	ctx := as(user.RoleManager)

	updated, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:       "6",
		ClockIn:  "08:50",
		ClockOut: strPtr("17:20"),
		Status:   strPtr("late"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 8.5, updated.DurationHours, 0.001)
	assert.Equal(t, "late", updated.Status)

	cleared, err := svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: "6", ClockIn: "08:50", ClockOut: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.ClockOut)
	assert.Zero(t, cleared.DurationHours)
	assert.Equal(t, "late", cleared.Status)

	_, err = svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: "missing", ClockIn: "08:00"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	_, err = svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{ID: "6", ClockIn: "18:00", ClockOut: strPtr("08:00")})
	assert.Error(t, err)
}
