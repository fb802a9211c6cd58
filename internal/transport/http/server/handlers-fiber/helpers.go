package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrProjectNotFound), errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrProjectExists):
		status = http.StatusConflict
		code = api.PROJECTEXISTS
		msg = "project name already exists"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.USEREXISTS
		msg = "username already exists"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = api.TEAMEXISTS
		msg = "team_name already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
}

// ErrorHandler renders errors returned by routing and parameter binding in
// the API error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return writeError(c, err)
	}

	switch fe.Code {
	case http.StatusBadRequest:
		return c.Status(fe.Code).JSON(errorResponse(api.INVALIDARGUMENT, fe.Message))
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return c.Status(fe.Code).JSON(errorResponse(api.NOTFOUND, fe.Message))
	default:
		return c.Status(fe.Code).JSON(errorResponse(api.INTERNAL, fe.Message))
	}
}
