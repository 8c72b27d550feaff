package handlers

import (
	"errors"
	"strconv"

	"github.com/SagarP2/Billing-Software/internal/services/cascade"
	"github.com/SagarP2/Billing-Software/internal/services/customer"
	"github.com/SagarP2/Billing-Software/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler covers the customer operations the generic gateway
// cannot express: lookups, the combined profile create, the single
// tax-detail rule and the cascading delete.
type CustomerHandler struct {
	customerService *customer.Service
	cascadeService  *cascade.Service
}

func NewCustomerHandler(customerService *customer.Service, cascadeService *cascade.Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		cascadeService:  cascadeService,
	}
}

// Get returns the customer's id and full name.
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}

	ref, err := h.customerService.Get(c.Context(), id)
	if errors.Is(err, customer.ErrNotFound) {
		return response.NotFound(c, "Customer not found")
	}
	if err != nil {
		return response.ServerError(c, "Failed to load customer")
	}
	return c.JSON(ref)
}

// Cards returns the customer's card rows, newest first, each annotated
// with the owning customer's name.
func (h *CustomerHandler) Cards(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}

	cards, err := h.customerService.CardsWithOwner(c.Context(), id)
	if err != nil {
		return response.ServerError(c, "Failed to load cards")
	}
	return c.JSON(cards)
}

// CreateProfile creates a customer together with its optional tax
// detail, identity document and opening account in one transaction.
func (h *CustomerHandler) CreateProfile(c *fiber.Ctx) error {
	var in customer.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.customerService.CreateProfile(c.Context(), &in)
	if err != nil {
		var vErr *customer.ValidationFailedError
		if errors.As(err, &vErr) {
			return response.ValidationFailed(c, vErr.Fields)
		}
		return response.ServerError(c, "Failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// AddCard validates and stores a card for the customer.
func (h *CustomerHandler) AddCard(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}

	var in customer.CardInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	card, err := h.customerService.AddCard(c.Context(), id, &in)
	if err != nil {
		var vErr *customer.ValidationFailedError
		if errors.As(err, &vErr) {
			return response.ValidationFailed(c, vErr.Fields)
		}
		if errors.Is(err, customer.ErrNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.ServerError(c, "Failed to save card")
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// SaveTaxDetail creates or replaces the customer's single tax detail.
func (h *CustomerHandler) SaveTaxDetail(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}

	var in customer.TaxInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	detail, err := h.customerService.SaveTaxDetail(c.Context(), id, &in)
	if err != nil {
		var vErr *customer.ValidationFailedError
		if errors.As(err, &vErr) {
			return response.ValidationFailed(c, vErr.Fields)
		}
		if errors.Is(err, customer.ErrNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.ServerError(c, "Failed to save tax detail")
	}
	return c.JSON(detail)
}

// Delete removes the customer and every dependent row in a single
// transaction.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}

	if err := h.cascadeService.DeleteCustomer(c.Context(), id); err != nil {
		if errors.Is(err, cascade.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		return response.ServerError(c, "Failed to delete customer")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func customerID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
