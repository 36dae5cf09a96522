package document

import (
	"context"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/fixtures"
)

type attendanceRepositoryImpl struct {
	records collection[attendance.Record]
}

func NewAttendanceRepository(store snapshot.Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		records: collection[attendance.Record]{store: store, name: snapshot.CollectionAttendance, defaults: fixtures.GetDefaultAttendance},
	}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	return r.records.load(ctx)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	err := r.records.update(ctx, func(records []attendance.Record) ([]attendance.Record, error) {
		return append(records, record), nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, fn func(attendance.Record) (attendance.Record, error)) (attendance.Record, error) {
	var updated attendance.Record

	err := r.records.update(ctx, func(records []attendance.Record) ([]attendance.Record, error) {
		for i, rec := range records {
			if rec.ID != id {
				continue
			}

			next, err := fn(rec)
			if err != nil {
				return nil, err
			}
			next.ID = rec.ID

			records[i] = next
			updated = next
			return records, nil
		}
		return nil, attendance.ErrAttendanceNotFound
	})
	if err != nil {
		return attendance.Record{}, err
	}

	return updated, nil
}
