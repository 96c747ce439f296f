package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
	"github.com/abdullahramzi/Namaa/internal/services"
)

func newSeededApp(t *testing.T) *fiber.App {
	t.Helper()

	catalogRepo := repositories.NewMockCatalogRepository()
	orderRepo := repositories.NewMockOrderRepository()
	settingsRepo := repositories.NewMockSettingsRepository(defaultSettings())

	seedCatalog(catalogRepo)
	seedContent(settingsRepo)
	seedOrders(orderRepo)

	catalogService := services.NewCatalogService(catalogRepo, nil)
	cartService := services.NewCartService(orderRepo, repositories.NewMemoryCartStore(), nil, nil)
	orderService := services.NewOrderService(orderRepo, nil)
	contentService := services.NewContentService(settingsRepo)
	insightService := services.NewInsightService(context.Background(), "", "gemini-3-flash-preview", catalogRepo)

	return buildApp(catalogService, cartService, orderService, contentService, insightService)
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	assert.NoError(t, err)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	app := newSeededApp(t)

	resp := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSeededStorefront(t *testing.T) {
	app := newSeededApp(t)

	resp := get(t, app, "/api/v1/services")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var seededServices []models.Service
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&seededServices))
	assert.Len(t, seededServices, 3)

	resp = get(t, app, "/api/v1/courses")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var courses []models.Course
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	assert.Len(t, courses, 2)

	resp = get(t, app, "/api/v1/pages/about")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/v1/admin/orders")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	assert.Len(t, orders, 2)
	// Newest first.
	assert.Equal(t, "ord-1002", orders[0].ID)
}
