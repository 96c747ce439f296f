package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
)

// OrderService handles the administrative side of orders: listing, status
// edits, and invoice generation.
type OrderService struct {
	orderRepo repositories.OrderRepository
	now       func() time.Time
}

// NewOrderService creates a new OrderService. A nil clock defaults to
// time.Now.
func NewOrderService(orderRepo repositories.OrderRepository, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{orderRepo: orderRepo, now: now}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderPending:         true,
		models.OrderAwaitingPayment: true,
		models.OrderInProgress:      true,
		models.OrderCompleted:       true,
		models.OrderCancelled:       true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// GenerateInvoice builds an invoice from the order's current amount and
// customer. The first call on a never-invoiced order also stamps the invoice
// id onto the order and moves it to completed; later calls leave the order
// untouched and return a freshly built invoice view.
func (s *OrderService) GenerateInvoice(orderID string) (*models.Invoice, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:               "INV-" + uuid.New().String(),
		OrderID:          order.ID,
		CustomerName:     order.CustomerName,
		Date:             s.now().Format(dateLayout),
		Amount:           order.Amount,
		Status:           models.InvoicePaid,
		ItemsDescription: fmt.Sprintf("Order #%s - %s", order.ID, order.ItemReference),
	}

	if order.InvoiceID == "" {
		if err := s.orderRepo.SetInvoice(order.ID, invoice.ID, models.OrderCompleted); err != nil {
			return nil, fmt.Errorf("failed to stamp invoice onto order %s: %w", order.ID, err)
		}
	}
	return invoice, nil
}
