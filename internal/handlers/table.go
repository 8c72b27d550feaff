// Package handlers contains the fiber HTTP handlers. They translate
// requests into service calls and service errors into the status codes
// and {"error": ...} bodies the admin frontend expects.
package handlers

import (
	"strconv"

	bizerrors "github.com/SagarP2/Billing-Software/internal/errors"
	"github.com/SagarP2/Billing-Software/internal/services/table"
	"github.com/SagarP2/Billing-Software/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TableHandler exposes the generic table gateway over /api/:table.
type TableHandler struct {
	tableService *table.Service
}

func NewTableHandler(tableService *table.Service) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List returns the newest rows of the table as a bare JSON array.
func (h *TableHandler) List(c *fiber.Ctx) error {
	rows, err := h.tableService.List(c.Context(), c.Params("table"))
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(rows)
}

// ListRelation returns the id/label pairs used by relation pickers.
func (h *TableHandler) ListRelation(c *fiber.Ctx) error {
	rows, err := h.tableService.ListRelation(c.Context(), c.Params("table"))
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(rows)
}

// Create inserts a row from the JSON body and returns it with its
// generated columns filled in.
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var body table.Row
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	row, err := h.tableService.Create(c.Context(), c.Params("table"), body)
	if err != nil {
		return tableError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update applies the JSON body to the row with the given id. A missing
// row yields a null body, not an error.
func (h *TableHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return tableError(c, err)
	}

	var body table.Row
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	row, err := h.tableService.Update(c.Context(), c.Params("table"), id, body)
	if err != nil {
		return tableError(c, err)
	}
	return c.JSON(row)
}

// Delete removes the row with the given id. Deleting a row that does
// not exist still succeeds.
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return tableError(c, err)
	}

	if err := h.tableService.Delete(c.Context(), c.Params("table"), id); err != nil {
		return tableError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// parseID accepts any integer; ids that match no row fall out as a
// null update or a no-op delete further down.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, bizerrors.ErrInvalidID
	}
	return id, nil
}

// tableError maps the gateway's error taxonomy onto status codes:
// domain errors are the caller's fault, everything else is ours.
func tableError(c *fiber.Ctx, err error) error {
	if bizerrors.IsDomain(err) {
		return response.BadRequest(c, err.Error())
	}
	return response.ServerError(c, err.Error())
}
