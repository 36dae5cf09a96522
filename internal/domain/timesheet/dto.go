package timesheet

import (
	"context"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type TimesheetResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	TotalHours  float64  `json:"total_hours"`
	Status      string   `json:"status"`
	SubmittedAt *string  `json:"submitted_at,omitempty"`
	ApprovedAt  *string  `json:"approved_at,omitempty"`
	ApprovedBy  *string  `json:"approved_by,omitempty"`
	Actions     []string `json:"actions"` // transitions the caller may run now
}

var actions = []Action{ActionSubmit, ActionApprove, ActionDecline, ActionReopen}

// NewTimesheetResponse maps ts for a caller holding role under p.
func NewTimesheetResponse(ts Timesheet, role user.Role, p policy.ApprovalPolicy) TimesheetResponse {
	allowed := make([]string, 0, len(actions))
	for _, a := range actions {
		if Allowed(ts, a, role, p) {
			allowed = append(allowed, string(a))
		}
	}

	return TimesheetResponse{
		ID:          ts.ID,
		UserID:      ts.OwnerUserID,
		UserName:    ts.OwnerName,
		PeriodStart: ts.PeriodStart,
		PeriodEnd:   ts.PeriodEnd,
		TotalHours:  ts.TotalHours,
		Status:      string(ts.State),
		SubmittedAt: formatTime(ts.SubmittedAt),
		ApprovedAt:  formatTime(ts.ApprovedAt),
		ApprovedBy:  ts.ApprovedBy,
		Actions:     allowed,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type TimesheetFilter struct {
	Status *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{string(StateDraft), string(StateSubmitted), string(StateApproved), string(StateDeclined)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: draft, submitted, approved, declined",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListTimesheetResponse struct {
	TotalCount int                 `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Showing    string              `json:"showing"`
	Timesheets []TimesheetResponse `json:"timesheets"`
}

// TransitionRequest asks for one lifecycle transition on a timesheet
type TransitionRequest struct {
	ID     string `json:"-"`
	Action Action `json:"-"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if !r.Action.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: submit, approve, decline, reopen",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimesheetService defines the timesheet workflow operations
type TimesheetService interface {
	// ApplyTransition runs a lifecycle transition as the session actor
	ApplyTransition(ctx context.Context, req TransitionRequest) (TimesheetResponse, error)

	// ListTimesheets lists timesheets visible to the session actor
	ListTimesheets(ctx context.Context, filter TimesheetFilter) (ListTimesheetResponse, error)

	// GetTimesheet retrieves a single timesheet visible to the session actor
	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
}
