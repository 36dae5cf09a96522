package timesheet

import (
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
)

type transition struct {
	from      []State
	to        State
	authorize func(user.Role, policy.ApprovalPolicy) bool // nil: no capability required
}

var transitions = map[Action]transition{
	ActionSubmit:  {from: []State{StateDraft}, to: StateSubmitted},
	ActionApprove: {from: []State{StateSubmitted}, to: StateApproved, authorize: policy.CanApprove},
	ActionDecline: {from: []State{StateSubmitted}, to: StateDeclined, authorize: policy.CanApprove},
	ActionReopen:  {from: []State{StateApproved, StateDeclined}, to: StateDraft, authorize: policy.CanReopen},
}

// Apply runs action against ts on behalf of actor and returns the updated
// record. Authorization is checked before the state precondition, so an actor
// without the capability always gets ErrUnauthorized. ts is never modified.
func Apply(ts Timesheet, action Action, actor user.Session, p policy.ApprovalPolicy, now time.Time) (Timesheet, error) {
	t, ok := transitions[action]
	if !ok {
		return ts, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if t.authorize != nil && !t.authorize(actor.Role, p) {
		return ts, fmt.Errorf("%w: role %s cannot %s", ErrUnauthorized, actor.Role, action)
	}

	if !slices.Contains(t.from, ts.State) {
		return ts, fmt.Errorf("%w: cannot %s a %s timesheet", ErrInvalidTransition, action, ts.State)
	}

	next := ts
	next.State = t.to
	switch action {
	case ActionSubmit:
		submittedAt := now
		next.SubmittedAt = &submittedAt
	case ActionApprove:
		approvedAt := now
		approvedBy := actor.Name
		next.ApprovedAt = &approvedAt
		next.ApprovedBy = &approvedBy
	case ActionDecline:
		next.ApprovedAt = nil
		next.ApprovedBy = nil
	case ActionReopen:
		next.SubmittedAt = nil
		next.ApprovedAt = nil
		next.ApprovedBy = nil
	}

	return next, nil
}

// Allowed reports whether actor could run action on ts right now.
func Allowed(ts Timesheet, action Action, role user.Role, p policy.ApprovalPolicy) bool {
	_, err := Apply(ts, action, user.Session{Role: role}, p, time.Time{})
	return err == nil
}
