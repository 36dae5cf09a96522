package snapshot

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names a persisted document. Each document is a full snapshot
// that is overwritten on every mutation.
type Collection string

const (
	CollectionUsers          Collection = "users"
	CollectionAttendance     Collection = "attendance"
	CollectionTimesheets     Collection = "timesheets"
	CollectionApprovalPolicy Collection = "timesheetApprovalConfig"
)

var ErrNotFound = errors.New("snapshot not found")

// Store persists named collection documents.
type Store interface {
	// Get returns the raw document. ErrNotFound when it was never written.
	Get(ctx context.Context, name Collection) (json.RawMessage, error)

	// Put overwrites the document.
	Put(ctx context.Context, name Collection, body json.RawMessage) error

	// Update runs fn on the current document (nil when absent) and writes its
	// result. No other Update or Put on the same store interleaves between
	// the read and the write. If fn fails nothing is written.
	Update(ctx context.Context, name Collection, fn func(current json.RawMessage) (json.RawMessage, error)) error
}
