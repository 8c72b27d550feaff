package handlers

import (
	"github.com/SagarP2/Billing-Software/internal/schema"
	"github.com/SagarP2/Billing-Software/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static pick lists the card form needs: the
// supported banks and the card names allowed for a bank and card type.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Banks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"banks": schema.Banks})
}

func (h *CatalogHandler) CardNames(c *fiber.Ctx) error {
	names := validation.CardNamesFor(c.Query("bank"), c.Query("card_type"))
	return c.JSON(fiber.Map{"card_names": names})
}
