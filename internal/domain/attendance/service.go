package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ListAttendance filters and paginates attendance records (admin/manager)
	ListAttendance(ctx context.Context, query AttendanceQuery) (ListAttendanceResponse, error)

	// CreateAttendance adds a record for a user (admin/manager)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateAttendance corrects clock times and recomputes the duration (admin/manager)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
