package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. A
// slice keeps insertion order so the dashboard sees the newest order first.
type MockOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// GetAll returns all orders, newest first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Order, len(r.orders))
	copy(list, r.orders)
	return list, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			o := order
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s not found", id)
}

// Create prepends a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = "ord_" + uuid.New().String()
	}
	r.orders = append([]models.Order{*order}, r.orders...)
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order with ID %s not found for status update", id)
}

// SetInvoice stamps the invoice id and status onto an order.
func (r *MockOrderRepository) SetInvoice(id string, invoiceID string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].InvoiceID = invoiceID
			r.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order with ID %s not found for invoice update", id)
}
