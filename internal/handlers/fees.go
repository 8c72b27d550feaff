package handlers

import (
	"github.com/SagarP2/Billing-Software/internal/services/fees"
	"github.com/SagarP2/Billing-Software/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FeesHandler exposes the transaction fee computation so forms can
// show tax, MDR, charges and profit before a transaction is saved.
type FeesHandler struct{}

func NewFeesHandler() *FeesHandler {
	return &FeesHandler{}
}

type feePreviewRequest struct {
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	PosType         string  `json:"pos_type"`
	TaxRate         float64 `json:"tax_rate"`
}

// Preview computes the fee breakdown for a prospective transaction.
// Credit transactions carry no fees and get a null breakdown.
func (h *FeesHandler) Preview(c *fiber.Ctx) error {
	var req feePreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	breakdown, err := fees.ForTransaction(req.TransactionType, req.Amount, req.PosType, req.TaxRate)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"fees": breakdown})
}

// Rates lists the tax rates available for a POS type so the form can
// populate its rate dropdown.
func (h *FeesHandler) Rates(c *fiber.Ctx) error {
	rates, err := fees.TaxRates(c.Params("posType"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"rates": rates})
}
