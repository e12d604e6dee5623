package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/creation2music/checkout-backend/internal/catalog"
	"github.com/creation2music/checkout-backend/internal/models"
	"github.com/creation2music/checkout-backend/internal/service"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	catalog         *catalog.Catalog
	publishableKey  string
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, cat *catalog.Catalog, publishableKey string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		catalog:         cat,
		publishableKey:  publishableKey,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse("Données manquantes"))
	}

	session, err := h.checkoutService.CreateCheckoutSession(&req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.NewErrorResponse(vErr.Reason))
		}
		// Upstream failure: the cause is already logged, the client gets a
		// generic message.
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.NewErrorResponse("Erreur lors de la création de la session de paiement"))
	}

	return c.JSON(session)
}

// GetProducts serves the storefront catalog along with the selectable styles.
func (h *CheckoutHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"products": h.catalog.Products(),
		"styles":   catalog.MusicStyles,
	})
}

// GetPublicConfig exposes the Stripe publishable key to the browser client.
func (h *CheckoutHandler) GetPublicConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"publishableKey": h.publishableKey,
	})
}
