package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/dto"
	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
)

// ServiceHandler handles service catalogue requests (protected).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler builds the handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Create service
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Service data"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List services
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Substring match on name or category"
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update service
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Service ID"
// @Param        body  body  dto.UpdateServiceRequest  true  "Changed fields"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus godoc
// @Summary      Toggle service active/inactive
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Service ID"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id}/toggle [patch]
func (h *ServiceHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete service
// @Tags         services
// @Security     Bearer
// @Param        id       path   string  true   "Service ID"
// @Param        version  query  int     false  "Expected record version"
// @Success      204  "No Content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryInt("version", 0)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
