package handlers_fiber

import (
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/mapper"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists teams filtered by query.
func (h *Handler) GetTeams(c *fiber.Ctx, params api.GetTeamsParams) error {
	teams, err := h.uc.Teams(c.UserContext(), value(params.Query))
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITeamList(teams))
}

// PostTeams creates a team.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body api.PostTeamsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	team, err := h.uc.CreateTeam(c.UserContext(), mapper.FromOAPITeamCreate(body))
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPITeam(*team))
}
