package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/csaassociates/ca-admin-api/internal/application/usecase"
)

// LedgerHandler handles customer account requests (protected).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler builds the handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      List customer accounts
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Substring match on customer name"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/ledgers [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Aggregate figures across every account
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LedgerStatsResponse
// @Router       /api/ledgers/stats [get]
func (h *LedgerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Download every account as an xlsx workbook
// @Tags         ledgers
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/ledgers/export [get]
func (h *LedgerHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportAll()
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Statement godoc
// @Summary      Download a customer statement as CSV
// @Tags         ledgers
// @Security     Bearer
// @Produce      text/csv
// @Param        customerID  path  string  true  "Customer ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledgers/{customerID}/statement [get]
func (h *LedgerHandler) Statement(c *fiber.Ctx) error {
	data, filename, err := h.uc.Statement(c.Params("customerID"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
