package user

type Permission string

const (
	// Timesheets
	PermissionTimesheetViewOwn Permission = "timesheet.view_own"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"
	PermissionTimesheetSubmit  Permission = "timesheet.submit"

	// Attendance Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Users & Dashboard
	PermissionUserViewAll   Permission = "user.view_all"
	PermissionUserManage    Permission = "user.manage"
	PermissionDashboardView Permission = "dashboard.view"

	// Settings
	PermissionPolicyView   Permission = "policy.view"
	PermissionPolicyManage Permission = "policy.manage"
)

// roleRank declares the role order used for gated checks: a role satisfies
// every requirement at or below its own rank.
var roleRank = map[Role]int{
	RoleEmployee:   1,
	RoleManager:    2,
	RoleSuperAdmin: 3,
}

// RoleSatisfies reports whether actual carries every capability of required.
// Unknown roles satisfy nothing and are satisfied by nothing.
func RoleSatisfies(required, actual Role) bool {
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	have, ok := roleRank[actual]
	if !ok {
		return false
	}
	return have >= need
}

// minimumRole maps each permission to the lowest role that holds it.
var minimumRole = map[Permission]Role{
	PermissionTimesheetViewOwn:  RoleEmployee,
	PermissionTimesheetSubmit:   RoleEmployee,
	PermissionPolicyView:        RoleEmployee,
	PermissionTimesheetViewAll:  RoleManager,
	PermissionAttendanceViewAll: RoleManager,
	PermissionAttendanceManage:  RoleManager,
	PermissionUserViewAll:       RoleManager,
	PermissionUserManage:        RoleManager,
	PermissionDashboardView:     RoleManager,
	PermissionPolicyManage:      RoleSuperAdmin,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	required, exists := minimumRole[permission]
	if !exists {
		return false
	}
	return RoleSatisfies(required, role)
}
