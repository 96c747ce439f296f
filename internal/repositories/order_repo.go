package repositories

import (
	"github.com/abdullahramzi/Namaa/internal/models"
)

// OrderRepository defines the interface for order data access. Create
// prepends, so GetAll returns orders newest first.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// SetInvoice stamps the invoice id and the accompanying status change
	// onto an order in one step.
	SetInvoice(id string, invoiceID string, status string) error
}
