package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
	"github.com/abdullahramzi/Namaa/internal/services"
)

func seedOrder(t *testing.T, repo *repositories.MockOrderRepository) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerName:  "Sara",
		CustomerPhone: "0555",
		ItemReference: "item-a (+1 more)",
		Status:        models.OrderPending,
		Date:          "2024-01-15",
		Amount:        120,
	}
	assert.NoError(t, repo.Create(order))
	return order
}

func TestGenerateInvoice_FirstCallStampsOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	order := seedOrder(t, repo)
	svc := services.NewOrderService(repo, fixedClock("2024-02-01"))

	invoice, err := svc.GenerateInvoice(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.Equal(t, 120.0, invoice.Amount)
	assert.Equal(t, models.InvoicePaid, invoice.Status)
	assert.Equal(t, "2024-02-01", invoice.Date)
	assert.Contains(t, invoice.ItemsDescription, order.ID)
	assert.Contains(t, invoice.ItemsDescription, "item-a (+1 more)")

	stored, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.ID, stored.InvoiceID)
	assert.Equal(t, models.OrderCompleted, stored.Status)
}

func TestGenerateInvoice_SecondCallIsIdempotentOnOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	order := seedOrder(t, repo)
	svc := services.NewOrderService(repo, fixedClock("2024-02-01"))

	first, err := svc.GenerateInvoice(order.ID)
	assert.NoError(t, err)

	second, err := svc.GenerateInvoice(order.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Amount, second.Amount)

	stored, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, stored.InvoiceID)
	assert.Equal(t, models.OrderCompleted, stored.Status)
}

func TestGenerateInvoice_UnknownOrder(t *testing.T) {
	svc := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	invoice, err := svc.GenerateInvoice("no-such-order")
	assert.Error(t, err)
	assert.Nil(t, invoice)
}

func TestUpdateOrderStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	order := seedOrder(t, repo)
	svc := services.NewOrderService(repo, nil)

	assert.NoError(t, svc.UpdateOrderStatus(order.ID, models.OrderInProgress))
	stored, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderInProgress, stored.Status)

	err = svc.UpdateOrderStatus(order.ID, "shipped")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")

	err = svc.UpdateOrderStatus("no-such-order", models.OrderCancelled)
	assert.Error(t, err)
}

func TestOrdersNewestFirst(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil)

	older := seedOrder(t, repo)
	newer := &models.Order{CustomerName: "Omar", CustomerPhone: "0550", ItemReference: "item-b", Status: models.OrderPending, Date: "2024-01-16", Amount: 70}
	assert.NoError(t, repo.Create(newer))

	orders, err := svc.GetAllOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}
