package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/pagination"
	"github.com/google/uuid"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: repo,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if _, err := user.Authorize(ctx, user.PermissionUserViewAll); err != nil {
		return user.ListUserResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return user.ListUserResponse{}, err
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	branches := make([]string, 0)
	matched := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Branch != "" && !slices.Contains(branches, u.Branch) {
			branches = append(branches, u.Branch)
		}
		if filter.Matches(u) {
			matched = append(matched, u)
		}
	}
	slices.Sort(branches)

	page, totalPages := pagination.Page(matched, filter.Page, filter.Limit)
	responses := make([]user.UserResponse, 0, len(page))
	for _, u := range page {
		responses = append(responses, user.NewUserResponse(u))
	}

	return user.ListUserResponse{
		TotalCount: len(matched),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    pagination.Showing(filter.Page, filter.Limit, len(responses), len(matched)),
		Branches:   branches,
		Users:      responses,
	}, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	if _, err := user.Authorize(ctx, user.PermissionUserViewAll); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.NewUserResponse(u), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	session, err := user.Authorize(ctx, user.PermissionUserManage)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role := user.Role(req.Role)
	if err := canAssign(session, role); err != nil {
		return user.UserResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Role:        role,
		Branch:      strings.TrimSpace(req.Branch),
		Department:  strings.TrimSpace(req.Department),
		KioskNumber: strings.TrimSpace(req.KioskNumber),
		StartDate:   req.StartDate,
		IsActive:    isActive,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return user.UserResponse{}, user.ErrEmailExists
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "id", created.ID, "role", created.Role, "by", session.Name)
	return user.NewUserResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	session, err := user.Authorize(ctx, user.PermissionUserManage)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role := user.Role(req.Role)
	updated, err := s.UserRepository.Update(ctx, req.ID, func(current user.User) (user.User, error) {
		if err := canAssign(session, current.Role); err != nil {
			return user.User{}, err
		}
		if err := canAssign(session, role); err != nil {
			return user.User{}, err
		}

		current.Name = strings.TrimSpace(req.Name)
		current.Email = strings.TrimSpace(req.Email)
		current.Role = role
		current.Branch = strings.TrimSpace(req.Branch)
		current.Department = strings.TrimSpace(req.Department)
		current.KioskNumber = strings.TrimSpace(req.KioskNumber)
		current.StartDate = req.StartDate
		if req.IsActive != nil {
			current.IsActive = *req.IsActive
		}
		return current, nil
	})
	if err != nil {
		return user.UserResponse{}, mutationError("update", err)
	}

	slog.Info("user updated", "id", updated.ID, "by", session.Name)
	return user.NewUserResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	session, err := user.Authorize(ctx, user.PermissionUserManage)
	if err != nil {
		return err
	}

	if id == session.UserID {
		return user.ErrCannotDeleteSelf
	}

	err = s.UserRepository.Delete(ctx, id, func(current user.User) error {
		return canAssign(session, current.Role)
	})
	if err != nil {
		return mutationError("delete", err)
	}

	slog.Info("user deleted", "id", id, "by", session.Name)
	return nil
}

// ToggleActive implements user.UserService.
func (s *UserServiceImpl) ToggleActive(ctx context.Context, id string) (user.UserResponse, error) {
	session, err := user.Authorize(ctx, user.PermissionUserManage)
	if err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.Update(ctx, id, func(current user.User) (user.User, error) {
		if err := canAssign(session, current.Role); err != nil {
			return user.User{}, err
		}
		current.IsActive = !current.IsActive
		return current, nil
	})
	if err != nil {
		return user.UserResponse{}, mutationError("toggle", err)
	}

	slog.Info("user active flag toggled", "id", updated.ID, "is_active", updated.IsActive, "by", session.Name)
	return user.NewUserResponse(updated), nil
}

// Capabilities implements user.UserService.
func (s *UserServiceImpl) Capabilities(ctx context.Context) (user.Capabilities, error) {
	session, err := user.SessionFromContext(ctx)
	if err != nil {
		return user.Capabilities{}, err
	}
	return user.ResolveCapabilities(session.Role), nil
}

// canAssign reports whether the actor may manage users holding role. Only a
// super admin manages super admins.
func canAssign(session user.Session, role user.Role) error {
	if role == user.RoleSuperAdmin && !user.RoleSatisfies(user.RoleSuperAdmin, session.Role) {
		return user.ErrSuperAdminRequired
	}
	return nil
}

func mutationError(op string, err error) error {
	for _, known := range []error{user.ErrUserNotFound, user.ErrEmailExists, user.ErrSuperAdminRequired} {
		if errors.Is(err, known) {
			return known
		}
	}
	return fmt.Errorf("failed to %s user: %w", op, err)
}
