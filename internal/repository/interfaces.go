// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes project-related operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
}

// TaskInterface exposes task-related operations.
type TaskInterface interface {
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
}
