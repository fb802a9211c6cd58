package postgres

import (
	"context"
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

const (
	listUsersQuery  = `SELECT id, username, email, profile_picture_url, team_id, role FROM users ORDER BY id`
	insertUserQuery = `
INSERT INTO users(username, email, profile_picture_url, team_id, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
)

// ListUsers returns every user ordered by id.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.ProfilePictureURL, &u.TeamID, &u.Role); err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a user and returns it with the assigned id.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery,
		user.Username, user.Email, user.ProfilePictureURL, user.TeamID, user.Role,
	).Scan(&user.ID)
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		switch pgCode(err) {
		case uniqueViolation:
			return nil, entities.ErrUserExists
		case foreignKeyViolation:
			return nil, missingReference(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID)
	return &user, nil
}
