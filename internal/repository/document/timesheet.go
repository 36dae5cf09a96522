package document

import (
	"context"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/fixtures"
)

type timesheetRepositoryImpl struct {
	timesheets collection[timesheet.Timesheet]
}

func NewTimesheetRepository(store snapshot.Store) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{
		timesheets: collection[timesheet.Timesheet]{store: store, name: snapshot.CollectionTimesheets, defaults: fixtures.GetDefaultTimesheets},
	}
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context) ([]timesheet.Timesheet, error) {
	return r.timesheets.load(ctx)
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	timesheets, err := r.timesheets.load(ctx)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	for _, ts := range timesheets {
		if ts.ID == id {
			return ts, nil
		}
	}

	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, id string, fn func(timesheet.Timesheet) (timesheet.Timesheet, error)) (timesheet.Timesheet, error) {
	var updated timesheet.Timesheet

	err := r.timesheets.update(ctx, func(timesheets []timesheet.Timesheet) ([]timesheet.Timesheet, error) {
		for i, ts := range timesheets {
			if ts.ID != id {
				continue
			}

			next, err := fn(ts)
			if err != nil {
				return nil, err
			}
			next.ID = ts.ID

			timesheets[i] = next
			updated = next
			return timesheets, nil
		}
		return nil, timesheet.ErrTimesheetNotFound
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return updated, nil
}
