package policy

import (
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
)

// ApprovalPolicy decides which roles may approve and reopen timesheets.
type ApprovalPolicy struct {
	WhoCanApprove     []user.Role
	WhoCanReopen      []user.Role
	RequireSubmission bool
}

// Default is the policy in force while none has been configured.
func Default() ApprovalPolicy {
	return ApprovalPolicy{
		WhoCanApprove:     []user.Role{user.RoleSuperAdmin, user.RoleManager},
		WhoCanReopen:      []user.Role{user.RoleSuperAdmin},
		RequireSubmission: true,
	}
}

// Document is the persisted form stored under the timesheetApprovalConfig key.
type Document struct {
	WhoCanApprove []string `json:"whoCanApprove"`
	WhoCanReopen  []string `json:"whoCanReopen"`
	RequireSubmit *bool    `json:"requireSubmit,omitempty"`
}

// ToDocument converts p into its persisted form.
func (p ApprovalPolicy) ToDocument() Document {
	requireSubmit := p.RequireSubmission
	return Document{
		WhoCanApprove: rolesToStrings(p.WhoCanApprove),
		WhoCanReopen:  rolesToStrings(p.WhoCanReopen),
		RequireSubmit: &requireSubmit,
	}
}

// ToPolicy converts a persisted document. Unknown role names are dropped and
// a missing requireSubmit falls back to the default.
func (d Document) ToPolicy() ApprovalPolicy {
	p := ApprovalPolicy{
		WhoCanApprove:     stringsToRoles(d.WhoCanApprove),
		WhoCanReopen:      stringsToRoles(d.WhoCanReopen),
		RequireSubmission: Default().RequireSubmission,
	}
	if d.RequireSubmit != nil {
		p.RequireSubmission = *d.RequireSubmit
	}
	return p
}

func rolesToStrings(roles []user.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func stringsToRoles(values []string) []user.Role {
	out := make([]user.Role, 0, len(values))
	seen := make(map[user.Role]struct{}, len(values))
	for _, v := range values {
		r := user.Role(v)
		if !r.IsValid() {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
