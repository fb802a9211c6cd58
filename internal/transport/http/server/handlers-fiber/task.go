package handlers_fiber

import (
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/mapper"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists tasks, optionally of one project and priority.
func (h *Handler) GetTasks(c *fiber.Ctx, params api.GetTasksParams) error {
	f := entities.TaskFilter{ProjectID: params.ProjectId}
	if params.Priority != nil && *params.Priority != "" {
		p, ok := entities.ParseTaskPriority(*params.Priority)
		if !ok {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "unknown priority"))
		}
		f.Priority = &p
	}

	tasks, err := h.uc.Tasks(c.UserContext(), f)
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITaskList(tasks))
}

// GetTasksByPriority serves the priority pages.
func (h *Handler) GetTasksByPriority(c *fiber.Ctx, priority string, params api.GetTasksByPriorityParams) error {
	tasks, err := h.uc.TasksByPriority(c.UserContext(), priority, params.UserId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITaskList(tasks))
}

// PostTasks creates a task.
func (h *Handler) PostTasks(c *fiber.Ctx) error {
	var body api.PostTasksJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	task, err := h.uc.CreateTask(c.UserContext(), mapper.FromOAPITaskCreate(body))
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPITask(*task))
}
