// Package mapper converts between domain models and the oapi transport models.
package mapper

import (
	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/oapi"
	"github.com/Harshvardhan-91/Project-Management/internal/timeline"
)

// FromOAPIProjectCreate builds an entities.Project from the create request.
func FromOAPIProjectCreate(src oapi.ProjectCreate) entities.Project {
	return entities.Project{
		Name:        src.Name,
		Description: deref(src.Description),
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
		Status:      entities.ProjectStatus(deref(src.Status)),
		Priority:    entities.ProjectPriority(deref(src.Priority)),
		Completion:  deref(src.Completion),
	}
}

// ToOAPIProject maps entities.Project to transport model.
func ToOAPIProject(p entities.Project) oapi.Project {
	return oapi.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		Completion:  p.Completion,
		StatusBadge: timeline.ProjectStatusBadge(p.Status),
	}
}

// ToOAPIProjectList maps a slice of projects.
func ToOAPIProjectList(list []entities.Project) []oapi.Project {
	res := make([]oapi.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToOAPIProject(p))
	}
	return res
}

// FromOAPITaskCreate builds an entities.Task from the create request.
func FromOAPITaskCreate(src oapi.TaskCreate) entities.Task {
	return entities.Task{
		Title:          src.Title,
		Description:    deref(src.Description),
		Status:         entities.TaskStatus(deref(src.Status)),
		Priority:       entities.TaskPriority(deref(src.Priority)),
		Tags:           deref(src.Tags),
		StartDate:      src.StartDate,
		DueDate:        src.DueDate,
		Points:         src.Points,
		ProjectID:      src.ProjectId,
		AuthorUserID:   src.AuthorUserId,
		AssignedUserID: src.AssignedUserId,
	}
}

// ToOAPITask maps entities.Task to transport model.
func ToOAPITask(t entities.Task) oapi.Task {
	return oapi.Task{
		Id:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Tags:           t.Tags,
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		Points:         t.Points,
		ProjectId:      t.ProjectID,
		AuthorUserId:   t.AuthorUserID,
		AssignedUserId: t.AssignedUserID,
		StatusBadge:    timeline.TaskStatusBadge(t.Status),
		PriorityBadge:  timeline.TaskPriorityBadge(t.Priority),
	}
}

// ToOAPITaskList maps a slice of tasks.
func ToOAPITaskList(list []entities.Task) []oapi.Task {
	res := make([]oapi.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITask(t))
	}
	return res
}

// FromOAPIUserCreate builds an entities.User from the create request.
func FromOAPIUserCreate(src oapi.UserCreate) entities.User {
	return entities.User{
		Username:          src.Username,
		Email:             deref(src.Email),
		ProfilePictureURL: deref(src.ProfilePictureUrl),
		TeamID:            src.TeamId,
		Role:              entities.UserRole(deref(src.Role)),
	}
}

// ToOAPIUser maps entities.User to transport model.
func ToOAPIUser(u entities.User) oapi.User {
	return oapi.User{
		UserId:            u.ID,
		Username:          u.Username,
		Email:             u.Email,
		ProfilePictureUrl: optional(u.ProfilePictureURL),
		TeamId:            u.TeamID,
		Role:              string(u.Role),
	}
}

// ToOAPIUserList maps a slice of users.
func ToOAPIUserList(list []entities.User) []oapi.User {
	res := make([]oapi.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToOAPIUser(u))
	}
	return res
}

// FromOAPITeamCreate builds an entities.Team from the create request.
func FromOAPITeamCreate(src oapi.TeamCreate) entities.Team {
	return entities.Team{
		Name:                 src.TeamName,
		ProductOwnerUserID:   src.ProductOwnerUserId,
		ProjectManagerUserID: src.ProjectManagerUserId,
	}
}

// ToOAPITeam maps entities.Team to transport model.
func ToOAPITeam(t entities.Team) oapi.Team {
	return oapi.Team{
		Id:                     t.ID,
		TeamName:               t.Name,
		ProductOwnerUserId:     t.ProductOwnerUserID,
		ProjectManagerUserId:   t.ProjectManagerUserID,
		ProductOwnerUsername:   t.ProductOwnerUsername,
		ProjectManagerUsername: t.ProjectManagerUsername,
	}
}

// ToOAPITeamList maps a slice of teams.
func ToOAPITeamList(list []entities.Team) []oapi.Team {
	res := make([]oapi.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITeam(t))
	}
	return res
}

// ToOAPISearch maps a search page to transport model.
func ToOAPISearch(page entities.SearchPage) oapi.SearchResponse {
	return oapi.SearchResponse{
		Query:    page.Query,
		Category: page.Category,
		Counts: oapi.SearchCounts{
			Total:    page.Counts.Total,
			Projects: page.Counts.Projects,
			Tasks:    page.Counts.Tasks,
			Users:    page.Counts.Users,
			Teams:    page.Counts.Teams,
		},
		Projects: ToOAPIProjectList(page.Results.Projects),
		Tasks:    ToOAPITaskList(page.Results.Tasks),
		Users:    ToOAPIUserList(page.Results.Users),
		Teams:    ToOAPITeamList(page.Results.Teams),
	}
}

// ToOAPITimeline maps Gantt rows to transport model.
func ToOAPITimeline(bars []timeline.Bar) oapi.TimelineResponse {
	res := make([]oapi.GanttBar, 0, len(bars))
	for _, b := range bars {
		bar := oapi.GanttBar{
			Id:          b.ID,
			Name:        b.Name,
			Start:       b.Start,
			End:         b.End,
			Type:        string(b.Type),
			Progress:    b.Progress,
			CustomClass: optional(b.CustomClass),
		}
		if b.Styles != nil {
			bar.Styles = &oapi.BarStyles{
				BackgroundColor:         b.Styles.BackgroundColor,
				BackgroundSelectedColor: b.Styles.BackgroundSelectedColor,
				ProgressColor:           b.Styles.ProgressColor,
				ProgressSelectedColor:   b.Styles.ProgressSelectedColor,
			}
		}
		res = append(res, bar)
	}
	return oapi.TimelineResponse{Bars: res}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
