package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	users      user.UserRepository
	attendance attendance.AttendanceRepository
	timesheets timesheet.TimesheetRepository
	policies   policy.Provider

	loc *time.Location
	now func() time.Time
}

func NewDashboardService(
	users user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	timesheets timesheet.TimesheetRepository,
	policies policy.Provider,
	loc *time.Location,
	now func() time.Time,
) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		users:      users,
		attendance: attendanceRepo,
		timesheets: timesheets,
		policies:   policies,
		loc:        loc,
		now:        now,
	}
}

// GetDashboard loads the three collections in parallel and derives the
// counters from them.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	actor, err := user.Authorize(ctx, user.PermissionDashboardView)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	var (
		users      []user.User
		records    []attendance.Record
		timesheets []timesheet.Timesheet
		p          policy.ApprovalPolicy
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if users, err = s.users.List(gCtx); err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if records, err = s.attendance.List(gCtx); err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if timesheets, err = s.timesheets.List(gCtx); err != nil {
			return fmt.Errorf("failed to list timesheets: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		p, err = s.policies.Current(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	today := s.now().In(s.loc).Format(time.DateOnly)

	stats := dashboard.StatsResponse{
		TotalUsers: len(users),
		Date:       today,
	}
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
	}
	for _, r := range records {
		if r.Date == today {
			stats.TodayClockIns++
		}
	}

	approvedHours := decimal.Zero
	pending := make([]timesheet.TimesheetResponse, 0, dashboard.RecentLimit)
	for _, ts := range timesheets {
		switch ts.State {
		case timesheet.StateApproved:
			approvedHours = approvedHours.Add(decimal.NewFromFloat(ts.TotalHours))
		case timesheet.StateSubmitted:
			stats.PendingTimesheets++
			if len(pending) < dashboard.RecentLimit {
				pending = append(pending, timesheet.NewTimesheetResponse(ts, actor.Role, p))
			}
		}
	}
	stats.ApprovedHoursTotal, _ = approvedHours.Round(1).Float64()

	recent := make([]attendance.AttendanceResponse, 0, dashboard.RecentLimit)
	for _, r := range records {
		if len(recent) == dashboard.RecentLimit {
			break
		}
		recent = append(recent, attendance.NewAttendanceResponse(r))
	}

	return dashboard.DashboardResponse{
		Stats:             stats,
		RecentActivity:    recent,
		PendingTimesheets: pending,
	}, nil
}
