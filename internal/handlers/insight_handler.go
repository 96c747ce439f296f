package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/services"
)

// InsightHandler proxies the AI consultant and recommendation endpoints.
// Failures of the upstream service are swallowed: the client receives the
// same empty payload whether the call failed or genuinely found nothing.
type InsightHandler struct {
	service *services.InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(service *services.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// RegisterRoutes registers the AI routes.
func (h *InsightHandler) RegisterRoutes(router fiber.Router) {
	ai := router.Group("/ai")
	ai.Post("/insights", h.HandleBusinessInsights)
	ai.Post("/recommendations", h.HandleRecommendations)
}

// HandleBusinessInsights generates business-consultant copy for an idea.
func (h *InsightHandler) HandleBusinessInsights(c *fiber.Ctx) error {
	var req struct {
		Idea     string `json:"idea"`
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Idea == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A business idea is required.",
		})
	}

	insight, err := h.service.BusinessInsights(c.UserContext(), req.Idea, req.Language)
	if err != nil {
		log.Printf("Business insight generation failed: %v", err)
		return c.JSON(fiber.Map{"insight": nil})
	}
	return c.JSON(fiber.Map{"insight": insight})
}

// HandleRecommendations recommends up to three catalog items for a goal.
func (h *InsightHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req struct {
		Goal     string `json:"goal"`
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Goal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A goal is required.",
		})
	}

	recs, err := h.service.Recommendations(c.UserContext(), req.Goal, req.Language)
	if err != nil {
		log.Printf("Recommendation generation failed: %v", err)
		return c.JSON(fiber.Map{"recommendations": []models.Recommendation{}})
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return c.JSON(fiber.Map{"recommendations": recs})
}
