package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/billing"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
)

// QuotationHandler handles quotation requests (protected).
type QuotationHandler struct {
	uc *billing.QuotationUseCase
}

// NewQuotationHandler builds the handler.
func NewQuotationHandler(uc *billing.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create godoc
// @Summary      Create quotation (draft)
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  true  "Quotation data"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
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
// @Summary      List quotations
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Substring match on number or customer name"
// @Success      200  {array}  dto.QuotationResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get quotation by ID
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Quotation ID"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update quotation (draft or sent only)
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Quotation ID"
// @Param        body  body  dto.UpdateQuotationRequest  true  "Changed fields"
// @Success      200   {object}  dto.QuotationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [put]
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Mark quotation as sent
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Quotation ID"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/send [post]
func (h *QuotationHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Accept godoc
// @Summary      Mark quotation as accepted
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Quotation ID"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/accept [post]
func (h *QuotationHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.Accept(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Mark quotation as rejected
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Quotation ID"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/reject [post]
func (h *QuotationHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Convert accepted quotation to invoice
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Quotation ID"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/convert [post]
func (h *QuotationHandler) Convert(c *fiber.Ctx) error {
	out, err := h.uc.ConvertToInvoice(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Delete quotation
// @Tags         quotations
// @Security     Bearer
// @Param        id       path   string  true   "Quotation ID"
// @Param        version  query  int     false  "Expected record version"
// @Success      204  "No Content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryInt("version", 0)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
