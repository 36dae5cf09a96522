package policy

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type PolicyResponse struct {
	WhoCanApprove []string `json:"whoCanApprove"`
	WhoCanReopen  []string `json:"whoCanReopen"`
	RequireSubmit bool     `json:"requireSubmit"`
}

// NewPolicyResponse converts p into its API form
func NewPolicyResponse(p ApprovalPolicy) PolicyResponse {
	return PolicyResponse{
		WhoCanApprove: rolesToStrings(p.WhoCanApprove),
		WhoCanReopen:  rolesToStrings(p.WhoCanReopen),
		RequireSubmit: p.RequireSubmission,
	}
}

// UpdatePolicyRequest replaces the approval policy. Omitted fields keep their
// current value.
type UpdatePolicyRequest struct {
	WhoCanApprove []string `json:"whoCanApprove"`
	WhoCanReopen  []string `json:"whoCanReopen"`
	RequireSubmit *bool    `json:"requireSubmit,omitempty"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	validRoles := []string{string(user.RoleSuperAdmin), string(user.RoleManager), string(user.RoleEmployee)}

	check := func(field string, roles []string) {
		for _, role := range roles {
			if !validator.IsInSlice(role, validRoles) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: fmt.Sprintf("unknown role %q", role),
				})
				return
			}
		}
		if validator.HasDuplicates(roles) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "roles must not repeat",
			})
		}
	}
	check("whoCanApprove", r.WhoCanApprove)
	check("whoCanReopen", r.WhoCanReopen)

	if r.WhoCanApprove == nil && r.WhoCanReopen == nil && r.RequireSubmit == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "policy",
			Message: "at least one field must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply returns current with the provided fields of r replaced.
func (r *UpdatePolicyRequest) Apply(current ApprovalPolicy) ApprovalPolicy {
	next := current
	if r.WhoCanApprove != nil {
		next.WhoCanApprove = stringsToRoles(r.WhoCanApprove)
	}
	if r.WhoCanReopen != nil {
		next.WhoCanReopen = stringsToRoles(r.WhoCanReopen)
	}
	if r.RequireSubmit != nil {
		next.RequireSubmission = *r.RequireSubmit
	}
	return next
}

// PolicyService manages the approval policy on behalf of the session actor.
type PolicyService interface {
	Provider

	// Get returns the policy currently in force
	Get(ctx context.Context) (PolicyResponse, error)

	// Update replaces the policy (super_admin only) and reloads it
	Update(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)

	// ReloadPolicy re-reads the stored policy (super_admin only)
	ReloadPolicy(ctx context.Context) (PolicyResponse, error)
}
