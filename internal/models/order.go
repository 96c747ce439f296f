package models

// Order statuses. New orders start pending; generating an invoice moves a
// pending order to completed. The remaining states are reachable through
// administrative status edits only.
const (
	OrderPending         = "pending"
	OrderAwaitingPayment = "awaiting_payment"
	OrderInProgress      = "in_progress"
	OrderCompleted       = "completed"
	OrderCancelled       = "cancelled"
)

// Order is created from a non-empty cart at checkout. Amount is fixed at
// creation time and never recomputed from catalog state. ItemReference is the
// first line's item id, annotated with a count of extras when the cart held
// more than one line (e.g. "srv_1 (+2 more)").
type Order struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	ItemReference string  `json:"item_reference"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	InvoiceID     string  `json:"invoice_id,omitempty"`
}

// Invoice is built on demand from exactly one order. Invoices here model only
// the already-settled case, so Status is always "paid".
type Invoice struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"order_id"`
	CustomerName     string  `json:"customer_name"`
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status"`
	ItemsDescription string  `json:"items_description"`
}

// InvoicePaid is the only invoice status the system models.
const InvoicePaid = "paid"
