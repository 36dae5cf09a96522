package timesheet

import "time"

type State string

const (
	StateDraft     State = "draft"
	StateSubmitted State = "submitted"
	StateApproved  State = "approved"
	StateDeclined  State = "declined"
)

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
	ActionReopen  Action = "reopen"
)

// IsValid checks if a is one of the four transitions
func (a Action) IsValid() bool {
	switch a {
	case ActionSubmit, ActionApprove, ActionDecline, ActionReopen:
		return true
	}
	return false
}

// Timesheet is a per-period approval record. ApprovedAt and ApprovedBy are set
// only while the state is approved.
type Timesheet struct {
	ID          string     `json:"id"`
	OwnerUserID string     `json:"userId"`
	OwnerName   string     `json:"userName"`
	PeriodStart string     `json:"periodStart"` // YYYY-MM-DD
	PeriodEnd   string     `json:"periodEnd"`   // YYYY-MM-DD
	TotalHours  float64    `json:"totalHours"`
	State       State      `json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy  *string    `json:"approvedBy,omitempty"`
}
