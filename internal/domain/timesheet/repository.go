package timesheet

import (
	"context"
)

// TimesheetRepository defines data access for the timesheets collection.
type TimesheetRepository interface {
	// List returns every timesheet in stored order
	List(ctx context.Context) ([]Timesheet, error)

	// GetByID returns ErrTimesheetNotFound when id is unknown
	GetByID(ctx context.Context, id string) (Timesheet, error)

	// Update reads the record, passes it to fn and persists the returned value.
	// Read, fn and write run as one atomic step against the store. When fn
	// fails nothing is written and its error is returned unchanged.
	Update(ctx context.Context, id string, fn func(Timesheet) (Timesheet, error)) (Timesheet, error)
}
