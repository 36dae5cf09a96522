package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/pagination"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository

	loc *time.Location
	now func() time.Time
}

// NewAttendanceService builds the service. Date presets resolve in loc.
func NewAttendanceService(repo attendance.AttendanceRepository, users user.UserRepository, loc *time.Location, now func() time.Time) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		UserRepository:       users,
		loc:                  loc,
		now:                  now,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, query attendance.AttendanceQuery) (attendance.ListAttendanceResponse, error) {
	if _, err := user.Authorize(ctx, user.PermissionAttendanceViewAll); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if err := query.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	criteria := query.Criteria(a.now().In(a.loc))
	matched := attendance.Filter(records, criteria)
	page, totalPages := attendance.Paginate(matched, query.Page, query.Limit)

	items := make([]attendance.AttendanceResponse, 0, len(page))
	for _, r := range page {
		items = append(items, attendance.NewAttendanceResponse(r))
	}

	return attendance.ListAttendanceResponse{
		TotalItems: len(matched),
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
		Showing:    pagination.Showing(query.Page, query.Limit, len(items), len(matched)),
		Branches:   branchesOf(records),
		Items:      items,
	}, nil
}

// CreateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	actor, err := user.Authorize(ctx, user.PermissionAttendanceManage)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	owner, err := a.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	clockOut := normalizeClockOut(req.ClockOut)
	record := attendance.Record{
		ID:            uuid.NewString(),
		UserID:        owner.ID,
		UserName:      owner.Name,
		Date:          req.Date,
		ClockIn:       req.ClockIn,
		ClockOut:      clockOut,
		DurationHours: attendance.Duration(req.ClockIn, clockOut),
		Status:        attendance.Status(req.Status),
		Branch:        owner.Branch,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("attendance record created",
		"attendance_id", created.ID,
		"user_id", created.UserID,
		"date", created.Date,
		"actor_id", actor.UserID,
	)

	return attendance.NewAttendanceResponse(created), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	actor, err := user.Authorize(ctx, user.PermissionAttendanceManage)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut := normalizeClockOut(req.ClockOut)
	updated, err := a.AttendanceRepository.Update(ctx, req.ID, func(r attendance.Record) (attendance.Record, error) {
		r.ClockIn = req.ClockIn
		r.ClockOut = clockOut
		r.DurationHours = attendance.Duration(req.ClockIn, clockOut)
		if req.Status != nil {
			r.Status = attendance.Status(*req.Status)
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slog.Info("attendance record updated",
		"attendance_id", updated.ID,
		"clock_in", updated.ClockIn,
		"duration_hours", updated.DurationHours,
		"actor_id", actor.UserID,
	)

	return attendance.NewAttendanceResponse(updated), nil
}

func normalizeClockOut(clockOut *string) *string {
	if clockOut == nil || *clockOut == "" {
		return nil
	}
	v := *clockOut
	return &v
}

// branchesOf returns the distinct non-empty branches of records, sorted.
func branchesOf(records []attendance.Record) []string {
	branches := make([]string, 0)
	for _, r := range records {
		if r.Branch != "" && !slices.Contains(branches, r.Branch) {
			branches = append(branches, r.Branch)
		}
	}
	slices.Sort(branches)
	return branches
}
