package policy

import "errors"

var (
	ErrPolicyUnavailable = errors.New("approval policy unavailable")
)
