package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	taskColumns     = `id, title, description, status, priority, tags, start_date, due_date, points, project_id, author_user_id, assigned_user_id`
	insertTaskQuery = `
INSERT INTO tasks(title, description, status, priority, tags, start_date, due_date, points, project_id, author_user_id, assigned_user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + taskColumns
)

// ListTasks returns tasks matching the filter ordered by id.
func (p *Postgres) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	query, args := buildTaskQuery(filter)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			p.log.Errorw("failed to scan task", "error", err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a task and returns the stored row.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, insertTaskQuery,
		task.Title, task.Description, task.Status, task.Priority, task.Tags,
		task.StartDate, task.DueDate, task.Points, task.ProjectID, task.AuthorUserID, task.AssignedUserID,
	))
	if err != nil {
		p.log.Errorw("failed to insert task", "error", err, "project_id", task.ProjectID)
		if pgCode(err) == foreignKeyViolation {
			return nil, missingReference(err)
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", t.ID, "project_id", t.ProjectID)
	return &t, nil
}

func buildTaskQuery(filter entities.TaskFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conds = append(conds, "project_id = "+next())
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		conds = append(conds, "priority = "+next())
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		n := next()
		conds = append(conds, "(author_user_id = "+n+" OR assigned_user_id = "+n+")")
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + taskColumns + " FROM tasks")
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY id")
	return sb.String(), args
}

func scanTask(row pgx.Row) (entities.Task, error) {
	var t entities.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.Tags,
		&t.StartDate, &t.DueDate, &t.Points, &t.ProjectID, &t.AuthorUserID, &t.AssignedUserID)
	return t, err
}
