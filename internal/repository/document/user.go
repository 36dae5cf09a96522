package document

import (
	"context"
	"slices"
	"strings"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/fixtures"
)

type userRepositoryImpl struct {
	users collection[user.User]
}

func NewUserRepository(store snapshot.Store) user.UserRepository {
	return &userRepositoryImpl{
		users: collection[user.User]{store: store, name: snapshot.CollectionUsers, defaults: fixtures.GetDefaultUsers},
	}
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.users.load(ctx)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return user.User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}

	return user.User{}, user.ErrUserNotFound
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	err := r.users.update(ctx, func(users []user.User) ([]user.User, error) {
		if emailTaken(users, u.Email, "") {
			return nil, user.ErrEmailExists
		}
		return append(users, u), nil
	})
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, fn func(user.User) (user.User, error)) (user.User, error) {
	var updated user.User

	err := r.users.update(ctx, func(users []user.User) ([]user.User, error) {
		for i, u := range users {
			if u.ID != id {
				continue
			}

			next, err := fn(u)
			if err != nil {
				return nil, err
			}
			next.ID = u.ID

			if emailTaken(users, next.Email, u.ID) {
				return nil, user.ErrEmailExists
			}

			users[i] = next
			updated = next
			return users, nil
		}
		return nil, user.ErrUserNotFound
	})
	if err != nil {
		return user.User{}, err
	}

	return updated, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string, fn func(user.User) error) error {
	return r.users.update(ctx, func(users []user.User) ([]user.User, error) {
		for i, u := range users {
			if u.ID != id {
				continue
			}

			if fn != nil {
				if err := fn(u); err != nil {
					return nil, err
				}
			}
			return slices.Delete(users, i, i+1), nil
		}
		return nil, user.ErrUserNotFound
	})
}

// emailTaken reports whether another user than except already uses email.
func emailTaken(users []user.User, email, except string) bool {
	for _, u := range users {
		if u.ID != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
