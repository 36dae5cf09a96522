package policy

import (
	"slices"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
)

// CanApprove reports whether role may approve or decline a submitted timesheet.
func CanApprove(role user.Role, p ApprovalPolicy) bool {
	return allowed(role, p.WhoCanApprove)
}

// CanReopen reports whether role may reopen an approved or declined timesheet.
func CanReopen(role user.Role, p ApprovalPolicy) bool {
	return allowed(role, p.WhoCanReopen)
}

// allowed is the single place the policy allow-lists are interpreted:
// super_admin passes regardless of the list, manager needs explicit
// membership, every other role is refused even when listed.
func allowed(role user.Role, allowList []user.Role) bool {
	if user.RoleSatisfies(user.RoleSuperAdmin, role) {
		return true
	}
	return role == user.RoleManager && slices.Contains(allowList, user.RoleManager)
}
