package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/pagination"
)

type TimesheetServiceImpl struct {
	repo     timesheet.TimesheetRepository
	policies policy.Provider
	now      func() time.Time

	// serializes policy read, record read, transition and write
	mu sync.Mutex
}

func NewTimesheetService(repo timesheet.TimesheetRepository, policies policy.Provider, now func() time.Time) timesheet.TimesheetService {
	if now == nil {
		now = time.Now
	}
	return &TimesheetServiceImpl{
		repo:     repo,
		policies: policies,
		now:      now,
	}
}

// ApplyTransition implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ApplyTransition(ctx context.Context, req timesheet.TransitionRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	actor, err := user.SessionFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.policies.Current(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	var from timesheet.State
	updated, err := s.repo.Update(ctx, req.ID, func(ts timesheet.Timesheet) (timesheet.Timesheet, error) {
		from = ts.State
		return timesheet.Apply(ts, req.Action, actor, p, s.now())
	})
	if err != nil {
		if errors.Is(err, timesheet.ErrUnauthorized) || errors.Is(err, timesheet.ErrInvalidTransition) {
			slog.Info("timesheet transition rejected",
				"timesheet_id", req.ID,
				"action", req.Action,
				"state", from,
				"actor_id", actor.UserID,
				"actor_role", actor.Role,
				"reason", err,
			)
			return timesheet.TimesheetResponse{}, err
		}
		if errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, err
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to %s timesheet: %w", req.Action, err)
	}

	slog.Info("timesheet transition applied",
		"timesheet_id", updated.ID,
		"action", req.Action,
		"from", from,
		"to", updated.State,
		"actor_id", actor.UserID,
		"actor_role", actor.Role,
	)

	return timesheet.NewTimesheetResponse(updated, actor.Role, p), nil
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) (timesheet.ListTimesheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	actor, err := user.Authorize(ctx, user.PermissionTimesheetViewOwn)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	p, err := s.policies.Current(ctx)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return timesheet.ListTimesheetResponse{}, fmt.Errorf("failed to list timesheets: %w", err)
	}

	visible := make([]timesheet.Timesheet, 0, len(all))
	for _, ts := range all {
		if !canView(actor, ts) {
			continue
		}
		if filter.Status != nil && string(ts.State) != *filter.Status {
			continue
		}
		visible = append(visible, ts)
	}

	page, totalPages := pagination.Page(visible, filter.Page, filter.Limit)

	responses := make([]timesheet.TimesheetResponse, 0, len(page))
	for _, ts := range page {
		responses = append(responses, timesheet.NewTimesheetResponse(ts, actor.Role, p))
	}

	return timesheet.ListTimesheetResponse{
		TotalCount: len(visible),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    pagination.Showing(filter.Page, filter.Limit, len(responses), len(visible)),
		Timesheets: responses,
	}, nil
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	actor, err := user.Authorize(ctx, user.PermissionTimesheetViewOwn)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	p, err := s.policies.Current(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	// Employees only see their own timesheets; others look missing
	if !canView(actor, ts) {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
	}

	return timesheet.NewTimesheetResponse(ts, actor.Role, p), nil
}

func canView(actor user.Session, ts timesheet.Timesheet) bool {
	return user.HasPermission(actor.Role, user.PermissionTimesheetViewAll) || ts.OwnerUserID == actor.UserID
}
