package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own user record")
	ErrNoSession               = errors.New("no authenticated session")
	ErrInvalidRole             = errors.New("invalid role")
	ErrSuperAdminRequired      = errors.New("super admin access required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
