// Package domain contains application Usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/filter"
	"github.com/Harshvardhan-91/Project-Management/internal/timeline"
)

// Projects returns projects matching query and status.
func (u *Usecase) Projects(ctx context.Context, query, status string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	q := filter.NewQuery(query)
	return filter.Where(projects, func(p entities.Project) bool {
		return q.Match(p.SearchFields()...) && filter.Tag(string(p.Status), status)
	}), nil
}

// Timeline returns Gantt rows for the projects matching query and status.
func (u *Usecase) Timeline(ctx context.Context, query, status string) ([]timeline.Bar, error) {
	projects, err := u.Projects(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return timeline.Projects(projects), nil
}

// ProjectTimeline returns Gantt rows for the tasks of a project.
func (u *Usecase) ProjectTimeline(ctx context.Context, projectID int64, dark bool) ([]timeline.Bar, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project id must be positive", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := u.repo.ListTasks(ctx, entities.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}
	return timeline.Tasks(tasks, dark), nil
}

// CreateProject validates and stores a project.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", entities.ErrInvalidArgument)
	}
	if project.Completion < 0 || project.Completion > 100 {
		return nil, fmt.Errorf("%w: completion must be within 0..100", entities.ErrInvalidArgument)
	}

	if project.Status == "" {
		project.Status = entities.ProjectOnTrack
	} else if st, ok := entities.ParseProjectStatus(string(project.Status)); ok {
		project.Status = st
	} else {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, project.Status)
	}

	if project.Priority == "" {
		project.Priority = entities.ProjectPriorityMedium
	} else if pr, ok := entities.ParseProjectPriority(string(project.Priority)); ok {
		project.Priority = pr
	} else {
		return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, project.Priority)
	}

	res, err := u.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project create", "project_id", res.ID)
	return res, nil
}
