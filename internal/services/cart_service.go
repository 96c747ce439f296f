package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
	"github.com/abdullahramzi/Namaa/pkg/rabbitmq"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// lines. No order is created and the cart is left untouched.
var ErrEmptyCart = errors.New("cart is empty")

// CartStorageKey is the single fixed key the serialized cart lives under in
// the cart store.
const CartStorageKey = "namaa_cart"

const dateLayout = "2006-01-02"

// EffectivePrice returns the price a buyer pays today: the discount price
// while a discount window is active, the list price otherwise. Window bounds
// are local calendar days in YYYY-MM-DD form and either bound may be open.
func EffectivePrice(listing *models.Listing, today string) float64 {
	active := listing.DiscountPrice > 0 &&
		(listing.DiscountStartDate == "" || today >= listing.DiscountStartDate) &&
		(listing.DiscountEndDate == "" || today <= listing.DiscountEndDate)
	if active {
		return listing.DiscountPrice
	}
	return listing.Price
}

// CartService owns the session cart: line mutation, totals, and converting
// the cart into an order at checkout. The cart is a snapshot, not a live
// join; once a line is added its prices never change.
type CartService struct {
	orderRepo repositories.OrderRepository
	store     repositories.CartStore
	mqClient  *rabbitmq.Client
	now       func() time.Time

	mu   sync.Mutex
	cart models.Cart
}

// NewCartService creates a CartService and rehydrates the cart from the
// store if a blob was persisted earlier. A nil clock defaults to time.Now;
// a nil mqClient disables event publication.
func NewCartService(orderRepo repositories.OrderRepository, store repositories.CartStore, mqClient *rabbitmq.Client, now func() time.Time) *CartService {
	if now == nil {
		now = time.Now
	}
	s := &CartService{
		orderRepo: orderRepo,
		store:     store,
		mqClient:  mqClient,
		now:       now,
	}
	s.rehydrate()
	return s
}

// Cart returns a copy of the current cart state.
func (s *CartService) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddItem appends a new line snapshotting the listing at today's effective
// price. Adding an id already in the cart is a no-op for the lines, but both
// paths flag the cart open for display. Returns the resulting cart.
func (s *CartService) AddItem(listing *models.Listing, kind models.ItemKind) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.IsOpen = true
	for _, line := range s.cart.Lines {
		if line.ID == listing.ID {
			return s.snapshot()
		}
	}

	today := s.now().Format(dateLayout)
	s.cart.Lines = append(s.cart.Lines, models.CartLine{
		ID:           listing.ID,
		Kind:         kind,
		TitleEn:      listing.TitleEn,
		TitleAr:      listing.TitleAr,
		UnitPrice:    EffectivePrice(listing, today),
		ListPrice:    listing.Price,
		ThumbnailURL: listing.ThumbnailURL,
		Icon:         listing.Icon,
	})
	s.persist()
	return s.snapshot()
}

// RemoveItem deletes the line with the given id if present.
func (s *CartService) RemoveItem(id string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.cart.Lines {
		if line.ID == id {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.persist()
			break
		}
	}
	return s.snapshot()
}

// Clear empties all lines.
func (s *CartService) Clear() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Lines = nil
	s.persist()
	return s.snapshot()
}

// Total returns the sum of unit prices over all lines.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

// SetOpen sets the cart drawer display flag.
func (s *CartService) SetOpen(open bool) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.IsOpen = open
	return s.snapshot()
}

// PlaceOrder converts a non-empty cart into a pending order and clears the
// cart. The order's amount is the cart total at this moment and is never
// recomputed. Fails with ErrEmptyCart on an empty cart, leaving everything
// unchanged; if recording the order fails the cart is also left intact.
func (s *CartService) PlaceOrder(customer models.CustomerInfo) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	itemRef := s.cart.Lines[0].ID
	if n := len(s.cart.Lines); n > 1 {
		itemRef = fmt.Sprintf("%s (+%d more)", itemRef, n-1)
	}

	order := &models.Order{
		ID:            "ord_" + uuid.New().String(),
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerEmail: customer.Email,
		Notes:         customer.Notes,
		ItemReference: itemRef,
		Status:        models.OrderPending,
		Date:          s.now().Format(dateLayout),
		Amount:        s.total(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	s.cart.Lines = nil
	s.cart.IsOpen = false
	s.persist()

	s.publishOrderCreated(order)
	return order, nil
}

func (s *CartService) total() float64 {
	var sum float64
	for _, line := range s.cart.Lines {
		sum += line.UnitPrice
	}
	return sum
}

// snapshot copies the cart so callers cannot alias the internal slice.
func (s *CartService) snapshot() models.Cart {
	lines := make([]models.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return models.Cart{Lines: lines, IsOpen: s.cart.IsOpen}
}

// persist writes the lines (not the display flag) to the store. Failures are
// logged and swallowed: persistence is fire-and-forget.
func (s *CartService) persist() {
	blob, err := json.Marshal(s.cart.Lines)
	if err != nil {
		log.Printf("Failed to marshal cart for persistence: %v", err)
		return
	}
	if err := s.store.Save(CartStorageKey, blob); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}

func (s *CartService) rehydrate() {
	blob, ok, err := s.store.Load(CartStorageKey)
	if err != nil {
		log.Printf("Failed to load persisted cart: %v", err)
		return
	}
	if !ok {
		return
	}
	var lines []models.CartLine
	if err := json.Unmarshal(blob, &lines); err != nil {
		log.Printf("Ignoring corrupt persisted cart: %v", err)
		return
	}
	s.cart.Lines = lines
}

// publishOrderCreated emits a best-effort "order.created" event. A missing
// client or a publish failure only logs a warning; checkout already
// succeeded.
func (s *CartService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"orderID":  order.ID,
		"customer": order.CustomerName,
		"status":   order.Status,
		"total":    order.Amount,
	})
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
