package usecase

import (
	"context"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/timeline"
)

// SearchUsecaseInterface abstracts the mixed search page.
type SearchUsecaseInterface interface {
	Search(ctx context.Context, query, category string) (entities.SearchPage, error)
}

// ProjectUsecaseInterface abstracts project listings and timelines.
type ProjectUsecaseInterface interface {
	Projects(ctx context.Context, query, status string) ([]entities.Project, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	Timeline(ctx context.Context, query, status string) ([]timeline.Bar, error)
	ProjectTimeline(ctx context.Context, projectID int64, dark bool) ([]timeline.Bar, error)
}

// TaskUsecaseInterface abstracts task listings.
type TaskUsecaseInterface interface {
	Tasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	TasksByPriority(ctx context.Context, priority string, userID *int64) ([]entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
}

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context, query, role string) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context, query string) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
}
