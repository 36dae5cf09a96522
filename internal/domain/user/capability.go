package user

// Capabilities are the boolean flags routing and menu code derive from the
// session role.
type Capabilities struct {
	Role         Role `json:"role"`
	IsSuperAdmin bool `json:"is_super_admin"`
	IsManager    bool `json:"is_manager"`
	IsEmployee   bool `json:"is_employee"`
}

// ResolveCapabilities derives the capability flags for role. IsManager holds
// for super_admin too; IsEmployee only for an exact employee match.
func ResolveCapabilities(role Role) Capabilities {
	return Capabilities{
		Role:         role,
		IsSuperAdmin: role == RoleSuperAdmin,
		IsManager:    RoleSatisfies(RoleManager, role),
		IsEmployee:   role == RoleEmployee,
	}
}

// HasRole is plain membership of the actual role in roles, with no hierarchy.
func (c Capabilities) HasRole(roles ...Role) bool {
	if !c.Role.IsValid() {
		return false
	}
	for _, r := range roles {
		if r == c.Role {
			return true
		}
	}
	return false
}
