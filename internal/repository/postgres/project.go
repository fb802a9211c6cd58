package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectColumns     = `id, name, description, start_date, end_date, status, priority, completion`
	listProjectsQuery  = `SELECT ` + projectColumns + ` FROM projects ORDER BY id`
	getProjectQuery    = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	insertProjectQuery = `
INSERT INTO projects(name, description, start_date, end_date, status, priority, completion)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns
)

// ListProjects returns every project ordered by id.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			p.log.Errorw("failed to scan project", "error", err)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, getProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}

// CreateProject inserts a project and returns the stored row.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, insertProjectQuery,
		project.Name, project.Description, project.StartDate, project.EndDate,
		project.Status, project.Priority, project.Completion,
	))
	if err != nil {
		p.log.Errorw("failed to insert project", "error", err, "name", project.Name)
		if pgCode(err) == uniqueViolation {
			return nil, entities.ErrProjectExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", pr.ID, "name", pr.Name)
	return &pr, nil
}

func scanProject(row pgx.Row) (entities.Project, error) {
	var pr entities.Project
	err := row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.StartDate, &pr.EndDate,
		&pr.Status, &pr.Priority, &pr.Completion)
	return pr, err
}
