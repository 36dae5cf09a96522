package policy

import (
	"slices"
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowLists enumerates every subset of the known roles.
func allowLists() [][]user.Role {
	var out [][]user.Role
	for mask := 0; mask < 1<<len(user.Roles); mask++ {
		var set []user.Role
		for i, r := range user.Roles {
			if mask&(1<<i) != 0 {
				set = append(set, r)
			}
		}
		out = append(out, set)
	}
	return out
}

func TestGate_Laws(t *testing.T) {
	for _, approve := range allowLists() {
		for _, reopen := range allowLists() {
			p := ApprovalPolicy{WhoCanApprove: approve, WhoCanReopen: reopen}
			for _, role := range user.Roles {
				wantApprove := role == user.RoleSuperAdmin ||
					(role == user.RoleManager && slices.Contains(approve, user.RoleManager))
				wantReopen := role == user.RoleSuperAdmin ||
					(role == user.RoleManager && slices.Contains(reopen, user.RoleManager))

				assert.Equal(t, wantApprove, CanApprove(role, p), "CanApprove(%s, %v)", role, approve)
				assert.Equal(t, wantReopen, CanReopen(role, p), "CanReopen(%s, %v)", role, reopen)
			}
		}
	}
}

func TestGate_SuperAdminBypassesEmptyPolicy(t *testing.T) {
	p := ApprovalPolicy{}
	assert.True(t, CanApprove(user.RoleSuperAdmin, p))
	assert.True(t, CanReopen(user.RoleSuperAdmin, p))
	assert.False(t, CanApprove(user.RoleManager, p))
}

func TestGate_EmployeeNeverPasses(t *testing.T) {
	p := ApprovalPolicy{WhoCanApprove: user.Roles, WhoCanReopen: user.Roles}
	assert.False(t, CanApprove(user.RoleEmployee, p))
	assert.False(t, CanReopen(user.RoleEmployee, p))
	assert.False(t, CanApprove(user.Role("owner"), p))
}

func TestGate_DefaultPolicy(t *testing.T) {
	p := Default()
	assert.True(t, CanApprove(user.RoleManager, p))
	assert.False(t, CanReopen(user.RoleManager, p))
	assert.True(t, CanReopen(user.RoleSuperAdmin, p))
}

func TestDocument_RoundTripAndUnknownRoles(t *testing.T) {
	doc := Document{
		WhoCanApprove: []string{"manager", "owner", "manager"},
		WhoCanReopen:  []string{},
	}
	p := doc.ToPolicy()
	assert.Equal(t, []user.Role{user.RoleManager}, p.WhoCanApprove)
	assert.Empty(t, p.WhoCanReopen)
	assert.True(t, p.RequireSubmission, "missing requireSubmit falls back to default")

	out := p.ToDocument()
	require.NotNil(t, out.RequireSubmit)
	assert.True(t, *out.RequireSubmit)
	assert.Equal(t, []string{"manager"}, out.WhoCanApprove)
}

func TestUpdatePolicyRequest_Validate(t *testing.T) {
	req := UpdatePolicyRequest{WhoCanApprove: []string{"super_admin", "owner"}}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whoCanApprove")

	req = UpdatePolicyRequest{WhoCanReopen: []string{"manager", "manager"}}
	assert.Error(t, req.Validate())

	assert.Error(t, (&UpdatePolicyRequest{}).Validate())

	no := false
	req = UpdatePolicyRequest{WhoCanApprove: []string{"super_admin"}, RequireSubmit: &no}
	require.NoError(t, req.Validate())

	next := req.Apply(Default())
	assert.Equal(t, []user.Role{user.RoleSuperAdmin}, next.WhoCanApprove)
	assert.Equal(t, Default().WhoCanReopen, next.WhoCanReopen)
	assert.False(t, next.RequireSubmission)
}
