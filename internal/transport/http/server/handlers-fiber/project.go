package handlers_fiber

import (
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/mapper"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists projects filtered by query and status.
func (h *Handler) GetProjects(c *fiber.Ctx, params api.GetProjectsParams) error {
	projects, err := h.uc.Projects(c.UserContext(), value(params.Query), value(params.Status))
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIProjectList(projects))
}

// PostProjects creates a project.
func (h *Handler) PostProjects(c *fiber.Ctx) error {
	var body api.PostProjectsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	project, err := h.uc.CreateProject(c.UserContext(), mapper.FromOAPIProjectCreate(body))
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIProject(*project))
}

// GetTimeline returns Gantt rows for the projects matching query and status.
func (h *Handler) GetTimeline(c *fiber.Ctx, params api.GetTimelineParams) error {
	bars, err := h.uc.Timeline(c.UserContext(), value(params.Query), value(params.Status))
	if err != nil {
		h.log.Errorw("failed to build timeline", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITimeline(bars))
}

// GetProjectTimeline returns Gantt rows for the tasks of one project.
func (h *Handler) GetProjectTimeline(c *fiber.Ctx, id int64, params api.GetProjectTimelineParams) error {
	bars, err := h.uc.ProjectTimeline(c.UserContext(), id, value(params.Dark))
	if err != nil {
		h.log.Errorw("failed to build project timeline", "error", err.Error(), "project_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITimeline(bars))
}
