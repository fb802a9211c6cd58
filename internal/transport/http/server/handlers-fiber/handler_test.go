package handlers_fiber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"
	"github.com/Harshvardhan-91/Project-Management/internal/timeline"
	"github.com/Harshvardhan-91/Project-Management/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) Search(ctx context.Context, query, category string) (entities.SearchPage, error) {
	args := m.Called(ctx, query, category)
	return args.Get(0).(entities.SearchPage), args.Error(1)
}

func (m *ucMock) Projects(ctx context.Context, query, status string) ([]entities.Project, error) {
	args := m.Called(ctx, query, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *ucMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *ucMock) Timeline(ctx context.Context, query, status string) ([]timeline.Bar, error) {
	args := m.Called(ctx, query, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]timeline.Bar), args.Error(1)
}

func (m *ucMock) ProjectTimeline(ctx context.Context, projectID int64, dark bool) ([]timeline.Bar, error) {
	args := m.Called(ctx, projectID, dark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]timeline.Bar), args.Error(1)
}

func (m *ucMock) Tasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *ucMock) TasksByPriority(ctx context.Context, priority string, userID *int64) ([]entities.Task, error) {
	args := m.Called(ctx, priority, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *ucMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *ucMock) Users(ctx context.Context, query, role string) ([]entities.User, error) {
	args := m.Called(ctx, query, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *ucMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) Teams(ctx context.Context, query string) ([]entities.Team, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *ucMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func newTestApp(uc *ucMock) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	h := NewHandler(zap.NewNop().Sugar(), uc)
	app.Get("/healthz", h.Healthz)
	api.RegisterHandlers(app, h)
	return app
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func requireErrorCode(t *testing.T, raw []byte, want api.ErrorResponseErrorCode) {
	t.Helper()
	require.Equal(t, want, decode[api.ErrorResponse](t, raw).Error.Code)
}

func TestRoutes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	projectID := int64(4)
	userID := int64(3)
	high := entities.PriorityHigh

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(uc *ucMock)
		wantStatus int
		check      func(t *testing.T, raw []byte)
	}{
		{
			name:       "healthz",
			method:     http.MethodGet,
			target:     "/healthz",
			wantStatus: http.StatusOK,
		},
		{
			name:   "search",
			method: http.MethodGet,
			target: "/search?query=apollo&category=projects",
			setup: func(uc *ucMock) {
				uc.On("Search", mock.Anything, "apollo", "projects").Return(entities.SearchPage{
					Query:    "apollo",
					Category: "projects",
					Results: entities.SearchResults{
						Projects: []entities.Project{{ID: 1, Name: "Apollo", Status: entities.ProjectOnTrack}},
						Tasks:    []entities.Task{},
						Users:    []entities.User{},
						Teams:    []entities.Team{},
					},
					Counts: entities.SearchCounts{Total: 3, Projects: 1, Tasks: 2},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.SearchResponse](t, raw)
				require.Equal(t, 3, body.Counts.Total)
				require.Len(t, body.Projects, 1)
				require.Equal(t, "bg-blue-100 text-blue-800 border-blue-200", body.Projects[0].StatusBadge)
				require.NotNil(t, body.Tasks)
				require.Empty(t, body.Tasks)
			},
		},
		{
			name:   "search_without_params",
			method: http.MethodGet,
			target: "/search",
			setup: func(uc *ucMock) {
				uc.On("Search", mock.Anything, "", "").Return(entities.SearchPage{Category: "all"}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				require.Equal(t, "all", decode[api.SearchResponse](t, raw).Category)
			},
		},
		{
			name:   "teams",
			method: http.MethodGet,
			target: "/teams?query=front",
			setup: func(uc *ucMock) {
				uc.On("Teams", mock.Anything, "front").Return([]entities.Team{
					{ID: 2, Name: "Frontend", ProductOwnerUsername: "alice", ProjectManagerUsername: "bob"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[[]api.Team](t, raw)
				require.Len(t, body, 1)
				require.Equal(t, "Frontend", body[0].TeamName)
				require.Equal(t, "bob", body[0].ProjectManagerUsername)
			},
		},
		{
			name:   "users",
			method: http.MethodGet,
			target: "/users?query=al&role=Developer",
			setup: func(uc *ucMock) {
				uc.On("Users", mock.Anything, "al", "Developer").Return([]entities.User{
					{ID: 1, Username: "alice", Email: "alice@company.com", Role: entities.RoleDeveloper},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[[]api.User](t, raw)
				require.Len(t, body, 1)
				require.Equal(t, int64(1), body[0].UserId)
				require.Nil(t, body[0].ProfilePictureUrl)
			},
		},
		{
			name:   "projects",
			method: http.MethodGet,
			target: "/projects?query=apo&status=At%20Risk",
			setup: func(uc *ucMock) {
				uc.On("Projects", mock.Anything, "apo", "At Risk").Return([]entities.Project{
					{ID: 1, Name: "Apollo", Status: entities.ProjectAtRisk, StartDate: &start},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[[]api.Project](t, raw)
				require.Len(t, body, 1)
				require.Equal(t, "bg-orange-100 text-orange-800 border-orange-200", body[0].StatusBadge)
				require.True(t, start.Equal(*body[0].StartDate))
			},
		},
		{
			name:   "create_project",
			method: http.MethodPost,
			target: "/projects",
			body:   `{"name":"Apollo","startDate":"2024-01-01T00:00:00Z","status":"At Risk"}`,
			setup: func(uc *ucMock) {
				uc.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
					return p.Name == "Apollo" && p.StartDate != nil && p.Status == entities.ProjectAtRisk
				})).Return(&entities.Project{ID: 5, Name: "Apollo", Status: entities.ProjectAtRisk}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, raw []byte) {
				require.Equal(t, int64(5), decode[api.Project](t, raw).Id)
			},
		},
		{
			name:   "create_project_conflict",
			method: http.MethodPost,
			target: "/projects",
			body:   `{"name":"Apollo"}`,
			setup: func(uc *ucMock) {
				uc.On("CreateProject", mock.Anything, mock.Anything).Return(nil, entities.ErrProjectExists)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.PROJECTEXISTS)
			},
		},
		{
			name:   "timeline",
			method: http.MethodGet,
			target: "/timeline?status=Delayed",
			setup: func(uc *ucMock) {
				uc.On("Timeline", mock.Anything, "", "Delayed").Return([]timeline.Bar{{
					ID: "Project-1", Name: "Apollo", Start: "2024-01-01", End: "2024-02-01",
					Type: timeline.BarProject, Progress: 40,
					Styles: &timeline.BarStyles{BackgroundColor: "rgba(239, 68, 68, 0.8)"},
				}}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.TimelineResponse](t, raw)
				require.Len(t, body.Bars, 1)
				require.Equal(t, "project", body.Bars[0].Type)
				require.NotNil(t, body.Bars[0].Styles)
				require.Equal(t, "rgba(239, 68, 68, 0.8)", body.Bars[0].Styles.BackgroundColor)
				require.Nil(t, body.Bars[0].CustomClass)
			},
		},
		{
			name:   "project_timeline",
			method: http.MethodGet,
			target: "/projects/7/timeline?dark=true",
			setup: func(uc *ucMock) {
				uc.On("ProjectTimeline", mock.Anything, int64(7), true).Return([]timeline.Bar{
					{ID: "Task-1", Name: "Hero", Start: "2024-01-01", End: "2024-01-08", Type: timeline.BarTask, Progress: 30, CustomClass: "dark-task"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.TimelineResponse](t, raw)
				require.Len(t, body.Bars, 1)
				require.Equal(t, "Task-1", body.Bars[0].Id)
				require.Equal(t, "dark-task", *body.Bars[0].CustomClass)
			},
		},
		{
			name:       "project_timeline_bad_id",
			method:     http.MethodGet,
			target:     "/projects/abc/timeline",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.INVALIDARGUMENT)
			},
		},
		{
			name:   "project_timeline_missing_project",
			method: http.MethodGet,
			target: "/projects/9/timeline",
			setup: func(uc *ucMock) {
				uc.On("ProjectTimeline", mock.Anything, int64(9), false).Return(nil, entities.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.NOTFOUND)
			},
		},
		{
			name:   "tasks_of_project",
			method: http.MethodGet,
			target: "/tasks?projectId=4&priority=high",
			setup: func(uc *ucMock) {
				uc.On("Tasks", mock.Anything, entities.TaskFilter{ProjectID: &projectID, Priority: &high}).Return([]entities.Task{
					{ID: 1, Title: "Hero", ProjectID: projectID, Priority: high, Status: entities.TaskToDo},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[[]api.Task](t, raw)
				require.Len(t, body, 1)
				require.Equal(t, projectID, body[0].ProjectId)
				require.Equal(t, "bg-orange-100 text-orange-800 border-orange-200", body[0].PriorityBadge)
			},
		},
		{
			name:       "tasks_bad_project_id",
			method:     http.MethodGet,
			target:     "/tasks?projectId=abc",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.INVALIDARGUMENT)
			},
		},
		{
			name:       "tasks_unknown_priority",
			method:     http.MethodGet,
			target:     "/tasks?priority=critical",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.INVALIDARGUMENT)
			},
		},
		{
			name:   "tasks_by_priority",
			method: http.MethodGet,
			target: "/tasks/priority/urgent?userId=3",
			setup: func(uc *ucMock) {
				uc.On("TasksByPriority", mock.Anything, "urgent", &userID).Return([]entities.Task{
					{ID: 1, Title: "Fix login", Priority: entities.PriorityUrgent},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, raw []byte) {
				body := decode[[]api.Task](t, raw)
				require.Len(t, body, 1)
				require.Equal(t, "bg-red-100 text-red-800 border-red-200", body[0].PriorityBadge)
			},
		},
		{
			name:   "create_task",
			method: http.MethodPost,
			target: "/tasks",
			body:   `{"title":"Hero","projectId":4,"authorUserId":3,"priority":"High","points":5}`,
			setup: func(uc *ucMock) {
				uc.On("CreateTask", mock.Anything, mock.MatchedBy(func(tk entities.Task) bool {
					return tk.Title == "Hero" && tk.ProjectID == 4 && tk.AuthorUserID == 3 &&
						tk.Priority == entities.PriorityHigh && tk.Points != nil && *tk.Points == 5
				})).Return(&entities.Task{ID: 8, Title: "Hero", ProjectID: 4, AuthorUserID: 3, Priority: entities.PriorityHigh, Status: entities.TaskToDo}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.Task](t, raw)
				require.Equal(t, int64(8), body.Id)
				require.Equal(t, "To Do", body.Status)
			},
		},
		{
			name:   "create_task_missing_project",
			method: http.MethodPost,
			target: "/tasks",
			body:   `{"title":"Hero","projectId":40,"authorUserId":3}`,
			setup: func(uc *ucMock) {
				uc.On("CreateTask", mock.Anything, mock.Anything).Return(nil, entities.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.NOTFOUND)
			},
		},
		{
			name:   "create_user",
			method: http.MethodPost,
			target: "/users",
			body:   `{"username":"carol","role":"Designer"}`,
			setup: func(uc *ucMock) {
				uc.On("CreateUser", mock.Anything, entities.User{Username: "carol", Role: entities.RoleDesigner}).
					Return(&entities.User{ID: 9, Username: "carol", Email: "carol@company.com", Role: entities.RoleDesigner}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.User](t, raw)
				require.Equal(t, int64(9), body.UserId)
				require.Equal(t, "carol@company.com", body.Email)
			},
		},
		{
			name:   "create_user_conflict",
			method: http.MethodPost,
			target: "/users",
			body:   `{"username":"carol"}`,
			setup: func(uc *ucMock) {
				uc.On("CreateUser", mock.Anything, mock.Anything).Return(nil, entities.ErrUserExists)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.USEREXISTS)
			},
		},
		{
			name:   "create_team",
			method: http.MethodPost,
			target: "/teams",
			body:   `{"teamName":"Frontend","productOwnerUserId":1}`,
			setup: func(uc *ucMock) {
				uc.On("CreateTeam", mock.Anything, mock.MatchedBy(func(tm entities.Team) bool {
					return tm.Name == "Frontend" && tm.ProductOwnerUserID != nil && *tm.ProductOwnerUserID == 1
				})).Return(&entities.Team{ID: 2, Name: "Frontend", ProductOwnerUsername: "alice"}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, raw []byte) {
				body := decode[api.Team](t, raw)
				require.Equal(t, int64(2), body.Id)
				require.Equal(t, "alice", body.ProductOwnerUsername)
			},
		},
		{
			name:   "create_team_conflict",
			method: http.MethodPost,
			target: "/teams",
			body:   `{"teamName":"Frontend"}`,
			setup: func(uc *ucMock) {
				uc.On("CreateTeam", mock.Anything, mock.Anything).Return(nil, entities.ErrTeamExists)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.TEAMEXISTS)
			},
		},
		{
			name:       "create_team_invalid_body",
			method:     http.MethodPost,
			target:     "/teams",
			body:       `{"teamName":`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.INVALIDARGUMENT)
			},
		},
		{
			name:       "unknown_route",
			method:     http.MethodGet,
			target:     "/widgets",
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, raw []byte) {
				requireErrorCode(t, raw, api.NOTFOUND)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := &ucMock{}
			if tt.setup != nil {
				tt.setup(uc)
			}

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.body != "" {
				req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			}

			resp, err := newTestApp(uc).Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode, string(raw))
			if tt.check != nil {
				tt.check(t, raw)
			}
			uc.AssertExpectations(t)
		})
	}
}
