package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
)

// SettingsHandler handles firm settings requests (protected).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Get firm settings
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateFirm godoc
// @Summary      Update firm letterhead details
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateFirmRequest  true  "Letterhead fields"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/firm [put]
func (h *SettingsHandler) UpdateFirm(c *fiber.Ctx) error {
	var in dto.UpdateFirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateFirm(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateInvoiceSettings godoc
// @Summary      Update numbering, tax and terms defaults
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInvoiceSettingsRequest  true  "Billing defaults"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/invoice [put]
func (h *SettingsHandler) UpdateInvoiceSettings(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.UpdateInvoiceSettings(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
