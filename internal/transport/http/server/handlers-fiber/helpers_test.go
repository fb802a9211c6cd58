package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorResponseErrorCode
		wantMsg    string
	}{
		{
			name:       "invalid_argument",
			err:        fmt.Errorf("%w: name is required", entities.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
			wantCode:   api.INVALIDARGUMENT,
			wantMsg:    "invalid argument: name is required",
		},
		{
			name:       "project_not_found",
			err:        entities.ErrProjectNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   api.NOTFOUND,
			wantMsg:    "resource not found",
		},
		{
			name:       "team_not_found",
			err:        entities.ErrTeamNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   api.NOTFOUND,
			wantMsg:    "resource not found",
		},
		{
			name:       "project_exists",
			err:        entities.ErrProjectExists,
			wantStatus: http.StatusConflict,
			wantCode:   api.PROJECTEXISTS,
			wantMsg:    "project name already exists",
		},
		{
			name:       "user_exists",
			err:        fmt.Errorf("insert user: %w", entities.ErrUserExists),
			wantStatus: http.StatusConflict,
			wantCode:   api.USEREXISTS,
			wantMsg:    "username already exists",
		},
		{
			name:       "team_exists",
			err:        entities.ErrTeamExists,
			wantStatus: http.StatusConflict,
			wantCode:   api.TEAMEXISTS,
			wantMsg:    "team_name already exists",
		},
		{
			name:       "user_not_found",
			err:        entities.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   api.NOTFOUND,
			wantMsg:    "resource not found",
		},
		{
			name:       "internal",
			err:        fmt.Errorf("list projects: %w", fmt.Errorf("conn reset")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   api.INTERNAL,
			wantMsg:    "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.wantCode, body.Error.Code)
			require.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   api.ErrorResponseErrorCode
	}{
		{name: "binding", err: fiber.NewError(fiber.StatusBadRequest, "Invalid format for parameter id"), wantStatus: http.StatusBadRequest, wantCode: api.INVALIDARGUMENT},
		{name: "route", err: fiber.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: api.NOTFOUND},
		{name: "method", err: fiber.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: api.NOTFOUND},
		{name: "fiber_other", err: fiber.ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: api.INTERNAL},
		{name: "domain", err: entities.ErrTeamExists, wantStatus: http.StatusConflict, wantCode: api.TEAMEXISTS},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
