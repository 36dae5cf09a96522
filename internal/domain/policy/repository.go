package policy

import (
	"context"
)

// Repository persists the approval policy document.
type Repository interface {
	// Get returns the stored policy, or the configured default when none is stored
	Get(ctx context.Context) (ApprovalPolicy, error)

	// Save overwrites the stored policy
	Save(ctx context.Context, p ApprovalPolicy) error
}

// Provider hands the policy in force to the authorization gate. The policy is
// loaded once and stays cached until Reload is called.
type Provider interface {
	Current(ctx context.Context) (ApprovalPolicy, error)
	Reload(ctx context.Context) error
}
