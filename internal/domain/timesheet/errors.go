package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrUnauthorized      = errors.New("not permitted to perform this timesheet action")
	ErrInvalidTransition = errors.New("transition not allowed from the current state")
	ErrUnknownAction     = errors.New("unknown timesheet action")
)
