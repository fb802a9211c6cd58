package handlers_fiber

import (
	"net/http"

	"github.com/Harshvardhan-91/Project-Management/internal/mapper"
	api "github.com/Harshvardhan-91/Project-Management/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetSearch runs a mixed search narrowed by category.
func (h *Handler) GetSearch(c *fiber.Ctx, params api.GetSearchParams) error {
	page, err := h.uc.Search(c.UserContext(), value(params.Query), value(params.Category))
	if err != nil {
		h.log.Errorw("failed to search", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISearch(page))
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
