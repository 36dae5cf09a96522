package attendance

import (
	"context"
)

// AttendanceRepository defines data access for the attendance collection.
type AttendanceRepository interface {
	// List returns every record in stored order
	List(ctx context.Context) ([]Record, error)

	// Create appends a record to the collection
	Create(ctx context.Context, record Record) (Record, error)

	// Update reads the record, passes it to fn and persists the result in one
	// atomic step. Returns ErrAttendanceNotFound when id is unknown.
	Update(ctx context.Context, id string, fn func(Record) (Record, error)) (Record, error)
}
