package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
)

// RequireSuperAdmin requires the super_admin role
func RequireSuperAdmin(next http.Handler) http.Handler {
	return requireRole(user.RoleSuperAdmin, user.ErrSuperAdminRequired)(next)
}

// RequireManager requires manager or super_admin role
func RequireManager(next http.Handler) http.Handler {
	return requireRole(user.RoleManager, user.ErrManagerAccessRequired)(next)
}

func requireRole(required user.Role, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := user.SessionFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.RoleSatisfies(required, session.Role) {
				response.HandleError(w, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := user.SessionFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(session.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, session.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
