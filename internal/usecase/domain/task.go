// Package domain contains application Usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

// Tasks lists tasks matching the filter.
func (u *Usecase) Tasks(ctx context.Context, f entities.TaskFilter) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if f.ProjectID != nil && *f.ProjectID <= 0 {
		return nil, fmt.Errorf("%w: projectId must be positive", entities.ErrInvalidArgument)
	}
	if f.UserID != nil && *f.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.ListTasks(ctx, f)
}

// TasksByPriority lists tasks of one priority, optionally those authored by
// or assigned to userID.
func (u *Usecase) TasksByPriority(ctx context.Context, priority string, userID *int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	p, ok := entities.ParseTaskPriority(priority)
	if !ok {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, priority)
	}
	if userID != nil && *userID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.ListTasks(ctx, entities.TaskFilter{Priority: &p, UserID: userID})
}

// CreateTask validates and stores a task.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" || task.ProjectID <= 0 || task.AuthorUserID <= 0 {
		return nil, fmt.Errorf("%w: title, projectId and authorUserId are required", entities.ErrInvalidArgument)
	}
	if task.StartDate != nil && task.DueDate != nil && task.DueDate.Before(*task.StartDate) {
		return nil, fmt.Errorf("%w: dueDate before startDate", entities.ErrInvalidArgument)
	}
	if task.Points != nil && *task.Points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", entities.ErrInvalidArgument)
	}

	if task.Status == "" {
		task.Status = entities.TaskToDo
	} else if st, ok := entities.ParseTaskStatus(string(task.Status)); ok {
		task.Status = st
	} else {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, task.Status)
	}

	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	} else if p, ok := entities.ParseTaskPriority(string(task.Priority)); ok {
		task.Priority = p
	} else {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, task.Priority)
	}

	res, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", res.ID, "project_id", res.ProjectID)
	return res, nil
}
