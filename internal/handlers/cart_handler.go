package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/services"
)

// CartHandler handles HTTP requests for the session cart and checkout.
type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the cart and checkout routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Delete("/items/:id", h.HandleRemoveItem)
	cart.Delete("/", h.HandleClearCart)
	cart.Put("/open", h.HandleSetOpen)

	router.Post("/checkout", h.HandleCheckout)
}

func (h *CartHandler) cartPayload(cart models.Cart) fiber.Map {
	var total float64
	for _, line := range cart.Lines {
		total += line.UnitPrice
	}
	return fiber.Map{
		"items":   cart.Lines,
		"is_open": cart.IsOpen,
		"count":   cart.Count(),
		"total":   total,
	}
}

// HandleGetCart returns the current cart with its total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.cartPayload(h.cartService.Cart()))
}

// HandleAddItem snapshots a catalog item into the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req struct {
		ID   string          `json:"id"`
		Kind models.ItemKind `json:"kind"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ID == "" || !models.ValidKinds[req.Kind] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An item id and a kind of service, course, or project are required.",
		})
	}

	listing, err := h.catalogService.GetListing(req.Kind, req.ID)
	if err != nil {
		log.Printf("Error resolving catalog item %s/%s: %v", req.Kind, req.ID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Item not found",
			"error":   err.Error(),
		})
	}

	cart := h.cartService.AddItem(listing, req.Kind)
	return c.JSON(h.cartPayload(cart))
}

// HandleRemoveItem deletes one line from the cart. Removing an id that is
// not in the cart is a no-op.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart := h.cartService.RemoveItem(c.Params("id"))
	return c.JSON(h.cartPayload(cart))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	cart := h.cartService.Clear()
	return c.JSON(h.cartPayload(cart))
}

// HandleSetOpen sets the cart drawer display flag.
func (h *CartHandler) HandleSetOpen(c *fiber.Ctx) error {
	var req struct {
		Open bool `json:"open"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	cart := h.cartService.SetOpen(req.Open)
	return c.JSON(h.cartPayload(cart))
}

// HandleCheckout places an order from the current cart.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var customer models.CustomerInfo
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name and phone are required for checkout.",
			"error":   err.Error(),
		})
	}

	order, err := h.cartService.PlaceOrder(customer)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot place an order with an empty cart.",
			})
		}
		log.Printf("Error placing order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
