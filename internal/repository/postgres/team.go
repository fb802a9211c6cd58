package postgres

import (
	"context"
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listTeamsQuery = `
SELECT t.id, t.name, t.product_owner_user_id, t.project_manager_user_id,
       COALESCE(po.username, ''), COALESCE(pm.username, '')
FROM teams t
LEFT JOIN users po ON po.id = t.product_owner_user_id
LEFT JOIN users pm ON pm.id = t.project_manager_user_id
ORDER BY t.id`
	insertTeamQuery = `
INSERT INTO teams(name, product_owner_user_id, project_manager_user_id)
VALUES ($1, $2, $3)
RETURNING id`
	selectUsernameQuery = `SELECT COALESCE((SELECT username FROM users WHERE id=$1), '')`
)

// ListTeams returns teams with owner and manager usernames.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ProductOwnerUserID, &t.ProjectManagerUserID,
			&t.ProductOwnerUsername, &t.ProjectManagerUsername); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// CreateTeam inserts a team and resolves the owner and manager usernames
// in the same transaction.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, insertTeamQuery,
		team.Name, team.ProductOwnerUserID, team.ProjectManagerUserID,
	).Scan(&team.ID)
	if err != nil {
		switch pgCode(err) {
		case uniqueViolation:
			return nil, entities.ErrTeamExists
		case foreignKeyViolation:
			return nil, missingReference(err)
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if team.ProductOwnerUsername, err = username(ctx, tx, team.ProductOwnerUserID); err != nil {
		return nil, err
	}
	if team.ProjectManagerUsername, err = username(ctx, tx, team.ProjectManagerUserID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit team: %w", err)
	}

	p.log.Infow("team created", "team", team.Name)
	return &team, nil
}

func username(ctx context.Context, tx pgx.Tx, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	var name string
	if err := tx.QueryRow(ctx, selectUsernameQuery, *id).Scan(&name); err != nil {
		return "", fmt.Errorf("select username: %w", err)
	}
	return name, nil
}
