package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	Date          string  `json:"date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	DurationHours float64 `json:"duration_hours"`
	Status        string  `json:"status"`
	Branch        string  `json:"branch"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		Date:          r.Date,
		ClockIn:       r.ClockIn,
		ClockOut:      r.ClockOut,
		DurationHours: r.DurationHours,
		Status:        string(r.Status),
		Branch:        r.Branch,
	}
}

// AttendanceQuery is the attendance list query. Branch and UserID accept
// "all" as the no-filter value.
type AttendanceQuery struct {
	// Search & Filter
	Search *string `json:"q,omitempty"`      // name or branch, case-insensitive
	Preset *string `json:"preset,omitempty"` // today, yesterday, last7days, thisMonth, lastMonth, last20days, all
	Date   *string `json:"date,omitempty"`   // YYYY-MM-DD, wins over Preset
	Branch *string `json:"branch,omitempty"`
	UserID *string `json:"user_id,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (q *AttendanceQuery) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if q.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if q.Page == 0 {
		q.Page = 1 // Default page
	}

	// Limit validation
	if q.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if q.Limit == 0 {
		q.Limit = 20 // Default limit
	}
	if q.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if q.Preset != nil {
		if _, err := ParsePreset(*q.Preset); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "preset",
				Message: "preset must be one of: all, today, yesterday, last7days, thisMonth, lastMonth, last20days",
			})
		}
	}

	if q.Date != nil && *q.Date != "" {
		if _, valid := validator.IsValidDate(*q.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Criteria resolves q against now. Call Validate first.
func (q AttendanceQuery) Criteria(now time.Time) Criteria {
	var c Criteria

	if q.Search != nil {
		c.Text = strings.TrimSpace(*q.Search)
	}

	switch {
	case q.Date != nil && *q.Date != "":
		c.Date = *q.Date
	case q.Preset != nil:
		if p, err := ParsePreset(*q.Preset); err == nil {
			c.Date, _ = ResolvePreset(p, now)
		}
	}

	c.Branch = unlessAll(q.Branch)
	c.UserID = unlessAll(q.UserID)

	return c
}

func unlessAll(v *string) string {
	if v == nil || *v == "all" {
		return ""
	}
	return *v
}

type ListAttendanceResponse struct {
	TotalItems int                  `json:"total_items"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	Showing    string               `json:"showing"`
	Branches   []string             `json:"branches"`
	Items      []AttendanceResponse `json:"items"`
}

// UpdateAttendanceRequest corrects the clock times of a record. An empty or
// missing clock_out clears it.
type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	ClockIn  string  `json:"clock_in"`            // HH:MM
	ClockOut *string `json:"clock_out,omitempty"` // HH:MM
	Status   *string `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validateClocks(r.ClockIn, r.ClockOut)...)

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, on_leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateAttendanceRequest adds a record for an existing user.
type CreateAttendanceRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`                // YYYY-MM-DD
	ClockIn  string  `json:"clock_in"`            // HH:MM
	ClockOut *string `json:"clock_out,omitempty"` // HH:MM
	Status   string  `json:"status"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = append(errs, validateClocks(r.ClockIn, r.ClockOut)...)

	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, on_leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClocks(clockIn string, clockOut *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in is required",
		})
	} else if !validator.IsValidClock(clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM format",
		})
	}

	if clockOut != nil && *clockOut != "" {
		if !validator.IsValidClock(*clockOut) {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be in HH:MM format",
			})
		} else if validator.IsValidClock(clockIn) && *clockOut < clockIn {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must not be before clock_in",
			})
		}
	}

	return errs
}
