package user

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Branch      string `json:"branch"`
	Department  string `json:"department"`
	KioskNumber string `json:"kiosk_number"`
	StartDate   string `json:"start_date"`
	IsActive    bool   `json:"is_active"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Branch:      u.Branch,
		Department:  u.Department,
		KioskNumber: u.KioskNumber,
		StartDate:   u.StartDate,
		IsActive:    u.IsActive,
	}
}

// UserFilter searches name, email and branch, case-insensitive.
type UserFilter struct {
	Search *string `json:"q,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Matches reports whether u passes the search text of f.
func (f UserFilter) Matches(u User) bool {
	if f.Search == nil {
		return true
	}
	text := strings.ToLower(strings.TrimSpace(*f.Search))
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), text) ||
		strings.Contains(strings.ToLower(u.Email), text) ||
		strings.Contains(strings.ToLower(u.Branch), text)
}

type ListUserResponse struct {
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Showing    string         `json:"showing"`
	Branches   []string       `json:"branches"`
	Users      []UserResponse `json:"users"`
}

// CreateUserRequest adds a user to the directory. IsActive defaults to true.
type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Branch      string `json:"branch"`
	Department  string `json:"department"`
	KioskNumber string `json:"kiosk_number"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	errs := validateProfile(r.Name, r.Email, r.Role, r.Branch, r.Department, r.KioskNumber, r.StartDate)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest replaces the profile of an existing user.
type UpdateUserRequest struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Branch      string `json:"branch"`
	Department  string `json:"department"`
	KioskNumber string `json:"kiosk_number"`
	StartDate   string `json:"start_date"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	errs = append(errs, validateProfile(r.Name, r.Email, r.Role, r.Branch, r.Department, r.KioskNumber, r.StartDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateProfile(name, email, role, branch, department, kiosk, startDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	required := []struct{ field, value string }{
		{"name", name},
		{"branch", branch},
		{"department", department},
		{"kiosk_number", kiosk},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !Role(role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: super_admin, manager, employee",
		})
	}

	if validator.IsEmpty(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, valid := validator.IsValidDate(startDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	return errs
}

type UserService interface {
	// List returns one page of the user directory together with the
	// distinct branch names
	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)

	// Get returns a single user
	Get(ctx context.Context, id string) (UserResponse, error)

	// Create adds a user to the directory
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Update replaces the profile of a user
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes a user from the directory
	Delete(ctx context.Context, id string) error

	// ToggleActive flips the active flag of a user
	ToggleActive(ctx context.Context, id string) (UserResponse, error)

	// Capabilities resolves the capability flags of the session actor
	Capabilities(ctx context.Context) (Capabilities, error)
}
