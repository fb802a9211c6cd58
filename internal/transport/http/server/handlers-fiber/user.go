package handlers_fiber

import (
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/mapper"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists users filtered by query and role.
func (h *Handler) GetUsers(c *fiber.Ctx, params api.GetUsersParams) error {
	users, err := h.uc.Users(c.UserContext(), value(params.Query), value(params.Role))
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIUserList(users))
}

// PostUsers registers a user.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body api.PostUsersJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	usr, err := h.uc.CreateUser(c.UserContext(), mapper.FromOAPIUserCreate(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIUser(*usr))
}
