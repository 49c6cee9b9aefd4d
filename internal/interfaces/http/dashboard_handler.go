package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/analytics"
)

// DashboardHandler serves the console overview (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Console overview: counts, billing figures, recent invoices
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
