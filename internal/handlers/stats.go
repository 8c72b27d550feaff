package handlers

import (
	"github.com/SagarP2/Billing-Software/internal/services/stats"
	"github.com/SagarP2/Billing-Software/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	statsService *stats.Service
}

func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary returns the entity counts, pending total, signed revenue and
// the five most recent transactions. The summary is computed fresh on
// every request.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.statsService.Summary(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to load dashboard stats")
	}
	return c.JSON(summary)
}
