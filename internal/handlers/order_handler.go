package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abdullahramzi/Namaa/internal/services"
)

// OrderHandler handles the administrative order endpoints.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleGetOrders)
	orders.Get("/:id", h.HandleGetOrderByID)
	orders.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orders.Post("/:id/invoice", h.HandleGenerateInvoice)
}

// HandleGetOrders retrieves all orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.service.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order update failed: %v", err),
			})
		}
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Order update failed: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

// HandleGenerateInvoice builds the invoice view of an order. The first call
// on an uninvoiced order also marks the order completed.
func (h *OrderHandler) HandleGenerateInvoice(c *fiber.Ctx) error {
	orderID := c.Params("id")
	invoice, err := h.service.GenerateInvoice(orderID)
	if err != nil {
		log.Printf("Error generating invoice for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate invoice",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}
