// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/filter"
)

// Users returns users matching query and role. An empty role or "all"
// keeps every role.
func (u *Usecase) Users(ctx context.Context, query, role string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	q := filter.NewQuery(query)
	return filter.Where(users, func(usr entities.User) bool {
		return q.Match(usr.SearchFields()...) && filter.Tag(string(usr.Role), role)
	}), nil
}

// CreateUser registers a user. Email defaults to <username>@company.com.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	if user.Role == "" {
		user.Role = entities.RoleDeveloper
	} else {
		role, ok := entities.ParseUserRole(string(user.Role))
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, user.Role)
		}
		user.Role = role
	}
	if user.Email == "" {
		user.Email = strings.ToLower(user.Username) + "@company.com"
	}

	return u.repo.CreateUser(ctx, user)
}
