package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session errors
	case errors.Is(err, user.ErrNoSession):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrInvalidRole):
		Unauthorized(w, "Invalid role in session")
	case errors.Is(err, user.ErrSuperAdminRequired):
		Forbidden(w, "Super admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Forbidden(w, "Cannot delete your own user record")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, timesheet.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrUnknownAction):
		ValidationError(w, map[string]string{"action": err.Error()})
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownPreset):
		ValidationError(w, map[string]string{"preset": err.Error()})

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyUnavailable):
		slog.Error("approval policy unavailable", "error", err)
		InternalServerError(w, "Approval policy is unavailable")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
