package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abdullahramzi/Namaa/internal/handlers"
	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
	"github.com/abdullahramzi/Namaa/internal/services"
)

// setupTestApp wires the full route surface against fresh in-memory
// repositories, mirroring the production assembly.
func setupTestApp(t *testing.T) (*fiber.App, *repositories.MockOrderRepository) {
	t.Helper()

	catalogRepo := repositories.NewMockCatalogRepository()
	orderRepo := repositories.NewMockOrderRepository()
	settingsRepo := repositories.NewMockSettingsRepository(models.SiteSettings{
		AppNameEn: "Namaa", AppNameAr: "نماء",
		EnableServices: true, EnableCourses: true, EnableProjects: true,
	})

	assert.NoError(t, catalogRepo.CreateService(&models.Service{Listing: models.Listing{
		ID: "srv-1", TitleEn: "Logo Design", TitleAr: "تصميم شعار", Price: 50,
	}}))
	assert.NoError(t, catalogRepo.CreateCourse(&models.Course{Listing: models.Listing{
		ID: "crs-1", TitleEn: "Store Launch Course", TitleAr: "دورة إطلاق المتجر", Price: 100,
		DiscountPrice: 70, DiscountStartDate: "2000-01-01", DiscountEndDate: "2100-01-01",
	}}))

	catalogService := services.NewCatalogService(catalogRepo, nil)
	cartService := services.NewCartService(orderRepo, repositories.NewMemoryCartStore(), nil, nil)
	orderService := services.NewOrderService(orderRepo, nil)
	contentService := services.NewContentService(settingsRepo)
	insightService := services.NewInsightService(context.Background(), "", "gemini-3-flash-preview", catalogRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	contentHandler := handlers.NewContentHandler(contentService)
	insightHandler := handlers.NewInsightHandler(insightService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	contentHandler.RegisterRoutes(apiV1)
	insightHandler.RegisterRoutes(apiV1)

	admin := apiV1.Group("/admin")
	catalogHandler.RegisterAdminRoutes(admin)
	contentHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterRoutes(admin)

	return app, orderRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(blob)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCheckoutFlow(t *testing.T) {
	app, _ := setupTestApp(t)

	// Empty cart to start.
	resp := doJSON(t, app, "GET", "/api/v1/cart", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cart struct {
		Items  []models.CartLine `json:"items"`
		IsOpen bool              `json:"is_open"`
		Count  int               `json:"count"`
		Total  float64           `json:"total"`
	}
	decode(t, resp, &cart)
	assert.Zero(t, cart.Count)

	// Add a plain service and a discounted course.
	resp = doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"id": "srv-1", "kind": "service"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"id": "crs-1", "kind": "course"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &cart)
	assert.Equal(t, 2, cart.Count)
	assert.Equal(t, 120.0, cart.Total)
	assert.True(t, cart.IsOpen)

	// Duplicate add is a no-op.
	resp = doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"id": "srv-1", "kind": "service"})
	decode(t, resp, &cart)
	assert.Equal(t, 2, cart.Count)

	// Checkout.
	resp = doJSON(t, app, "POST", "/api/v1/checkout", fiber.Map{"name": "Sara", "phone": "0555"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)
	assert.Equal(t, 120.0, order.Amount)
	assert.Equal(t, "srv-1 (+1 more)", order.ItemReference)
	assert.Equal(t, models.OrderPending, order.Status)

	// Cart is cleared.
	resp = doJSON(t, app, "GET", "/api/v1/cart", nil)
	decode(t, resp, &cart)
	assert.Zero(t, cart.Count)

	// The order shows up on the admin dashboard.
	resp = doJSON(t, app, "GET", "/api/v1/admin/orders", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orders []models.Order
	decode(t, resp, &orders)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	// Missing phone.
	resp := doJSON(t, app, "POST", "/api/v1/checkout", fiber.Map{"name": "Sara"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Valid customer but empty cart.
	resp = doJSON(t, app, "POST", "/api/v1/checkout", fiber.Map{"name": "Sara", "phone": "0555"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddItemErrors(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"id": "srv-404", "kind": "service"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"id": "srv-1", "kind": "bundle"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/cart/items", fiber.Map{"kind": "service"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInvoiceEndpoint(t *testing.T) {
	app, orderRepo := setupTestApp(t)

	order := &models.Order{CustomerName: "Sara", CustomerPhone: "0555",
		ItemReference: "srv-1", Status: models.OrderPending, Date: "2024-01-15", Amount: 50}
	assert.NoError(t, orderRepo.Create(order))

	resp := doJSON(t, app, "POST", "/api/v1/admin/orders/"+order.ID+"/invoice", nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var invoice models.Invoice
	decode(t, resp, &invoice)
	assert.Equal(t, models.InvoicePaid, invoice.Status)
	assert.Equal(t, order.ID, invoice.OrderID)

	// The order is now completed and keeps the first invoice id even after a
	// second generation.
	resp = doJSON(t, app, "POST", "/api/v1/admin/orders/"+order.ID+"/invoice", nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/admin/orders/"+order.ID, nil)
	var stored models.Order
	decode(t, resp, &stored)
	assert.Equal(t, models.OrderCompleted, stored.Status)
	assert.Equal(t, invoice.ID, stored.InvoiceID)

	resp = doJSON(t, app, "POST", "/api/v1/admin/orders/no-such-order/invoice", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderStatusEndpoint(t *testing.T) {
	app, orderRepo := setupTestApp(t)
	order := &models.Order{CustomerName: "Omar", CustomerPhone: "0550",
		ItemReference: "crs-1", Status: models.OrderPending, Date: "2024-01-15", Amount: 70}
	assert.NoError(t, orderRepo.Create(order))

	resp := doJSON(t, app, "PATCH", "/api/v1/admin/orders/"+order.ID+"/status", fiber.Map{"status": "in_progress"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/v1/admin/orders/"+order.ID+"/status", fiber.Map{"status": "shipped"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/v1/admin/orders/no-such-order/status", fiber.Map{"status": "cancelled"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/services", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []models.Service
	decode(t, resp, &list)
	assert.Len(t, list, 1)

	resp = doJSON(t, app, "GET", "/api/v1/services?q=nothing-matches", nil)
	decode(t, resp, &list)
	assert.Empty(t, list)

	resp = doJSON(t, app, "GET", "/api/v1/courses/crs-1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/courses/crs-404", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReviewEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/services/srv-1/reviews", fiber.Map{
		"user_name": "Noura", "rating": 5, "comment": "ممتاز",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var review models.Review
	decode(t, resp, &review)
	assert.Equal(t, models.ReviewPending, review.Status)

	resp = doJSON(t, app, "PATCH", "/api/v1/admin/services/srv-1/reviews/"+review.ID, fiber.Map{
		"action": "approve",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/v1/services/srv-1", nil)
	var svc models.Service
	decode(t, resp, &svc)
	assert.Len(t, svc.Reviews, 1)
	assert.Equal(t, models.ReviewApproved, svc.Reviews[0].Status)

	// Out-of-range rating.
	resp = doJSON(t, app, "POST", "/api/v1/services/srv-1/reviews", fiber.Map{
		"user_name": "Noura", "rating": 9, "comment": "too much",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContentEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/settings", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload struct {
		Settings        models.SiteSettings `json:"settings"`
		ExchangeRateSAR float64             `json:"exchange_rate_sar"`
	}
	decode(t, resp, &payload)
	assert.Equal(t, "Namaa", payload.Settings.AppNameEn)
	assert.Equal(t, models.ExchangeRateSAR, payload.ExchangeRateSAR)
}

func TestInsightEndpointsDisabled(t *testing.T) {
	app, _ := setupTestApp(t)

	// Without an API key the consultant degrades to the empty state rather
	// than erroring.
	resp := doJSON(t, app, "POST", "/api/v1/ai/insights", fiber.Map{"idea": "coffee shop", "language": "en"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var insightResp struct {
		Insight *models.BusinessInsight `json:"insight"`
	}
	decode(t, resp, &insightResp)
	assert.Nil(t, insightResp.Insight)

	resp = doJSON(t, app, "POST", "/api/v1/ai/recommendations", fiber.Map{"goal": "grow sales", "language": "ar"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var recResp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	decode(t, resp, &recResp)
	assert.Empty(t, recResp.Recommendations)

	resp = doJSON(t, app, "POST", "/api/v1/ai/insights", fiber.Map{"language": "en"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
