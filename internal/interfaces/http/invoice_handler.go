package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/billing"
	"github.com/csaassociates/ca-admin-api/internal/application/dto"
)

// InvoiceHandler handles invoice requests (protected).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Create invoice
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Invoice data"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
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
// @Summary      List invoices with derived statuses
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Substring match on number or customer name"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Invoice aggregate figures
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvoiceStatsResponse
// @Router       /api/invoices/stats [get]
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get invoice by ID
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary      Record a payment against an invoice
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Invoice ID"
// @Param        body  body  dto.RecordPaymentRequest  true  "Payment data"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.RecordPayment(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Payments godoc
// @Summary      List payments of an invoice
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payments [get]
func (h *InvoiceHandler) Payments(c *fiber.Ctx) error {
	out, err := h.uc.Payments(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete invoice (refused once payments exist)
// @Tags         invoices
// @Security     Bearer
// @Param        id       path   string  true   "Invoice ID"
// @Param        version  query  int     false  "Expected record version"
// @Success      204  "No Content"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), c.QueryInt("version", 0)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
