package user

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Full access, configures approval policy
	RoleManager    Role = "manager"     // Can approve timesheets when the policy allows it
	RoleEmployee   Role = "employee"    // Regular employee
)

// Roles lists every known role, highest first.
var Roles = []Role{RoleSuperAdmin, RoleManager, RoleEmployee}

// IsValid checks if r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Branch      string `json:"branch"`
	Department  string `json:"department"`
	KioskNumber string `json:"kioskNumber"`
	StartDate   string `json:"startDate"`
	IsActive    bool   `json:"isActive"`
}
