package user

import (
	"context"
)

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// Create appends u. Returns ErrEmailExists when the email is taken.
	Create(ctx context.Context, u User) (User, error)

	// Update reads the user, passes it to fn and persists the result in one
	// atomic step. Returns ErrUserNotFound when id is unknown.
	Update(ctx context.Context, id string, fn func(User) (User, error)) (User, error)

	// Delete removes the user. fn sees the stored record first and may veto.
	Delete(ctx context.Context, id string, fn func(User) error) error
}
