package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/abdullahramzi/Namaa/internal/models"
	"github.com/abdullahramzi/Namaa/internal/repositories"
)

// InsightService proxies the two generative-AI calls the storefront offers:
// business-insight generation and catalog item recommendation. Both are
// best-effort request/response calls with no retry; any transport or parse
// failure surfaces to the caller as an error, which handlers render as the
// empty state.
type InsightService struct {
	client      *genai.Client
	model       string
	catalogRepo repositories.CatalogRepository
}

// NewInsightService creates an InsightService. With an empty API key the
// client stays nil and every call reports the service as unavailable, which
// matches the storefront's "no results" empty state.
func NewInsightService(ctx context.Context, apiKey, model string, catalogRepo repositories.CatalogRepository) *InsightService {
	s := &InsightService{model: model, catalogRepo: catalogRepo}
	if apiKey == "" {
		log.Println("GEMINI_API_KEY is not set; AI consultant disabled")
		return s
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("Failed to create GenAI client, AI consultant disabled: %v", err)
		return s
	}
	s.client = client
	return s
}

// Enabled reports whether the AI client is configured.
func (s *InsightService) Enabled() bool { return s.client != nil }

func localeName(locale string) string {
	if locale == "ar" {
		return "Arabic"
	}
	return "English"
}

// BusinessInsights asks the model for a business name, slogan, and three
// growth strategy steps for the visitor's idea.
func (s *InsightService) BusinessInsights(ctx context.Context, idea, locale string) (*models.BusinessInsight, error) {
	if s.client == nil {
		return nil, fmt.Errorf("AI service is not configured")
	}

	prompt := fmt.Sprintf(`You are a business consultant expert.
User Business Idea: %q
Language: %s

Provide:
1. A creative business name.
2. A catchy slogan.
3. Three actionable short steps for initial growth strategy.

Return pure JSON with keys: "businessName", "slogan", "strategySteps" (array of strings).`,
		idea, localeName(locale))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"businessName": {Type: genai.TypeString},
				"slogan":       {Type: genai.TypeString},
				"strategySteps": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var insight models.BusinessInsight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse insight response: %w", err)
	}
	return &insight, nil
}

// Recommendations asks the model to pick up to three catalog items that best
// serve the visitor's goal, with a short reason each in the visitor's locale.
func (s *InsightService) Recommendations(ctx context.Context, goal, locale string) ([]models.Recommendation, error) {
	if s.client == nil {
		return nil, fmt.Errorf("AI service is not configured")
	}

	summary, err := s.catalogSummary()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog summary: %w", err)
	}

	prompt := fmt.Sprintf(`You are an intelligent recommendation engine for a business services platform.

User Goal/Context: %q
Language: %s

%s

Task: Recommend exactly 3 items (a mix of kinds is allowed) that best help the user achieve their goal.

Return pure JSON with key "recommendations" which is an array of objects.
Each object must have:
- "itemId": The ID of the item.
- "type": "service", "course" or "project".
- "reason": A short explanation (in %s) of why this is recommended.`,
		goal, localeName(locale), summary, localeName(locale))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recommendations": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"itemId": {Type: genai.TypeString},
							"type":   {Type: genai.TypeString, Enum: []string{"service", "course", "project"}},
							"reason": {Type: genai.TypeString},
						},
					},
				},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("recommendation generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var parsed struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse recommendation response: %w", err)
	}
	if len(parsed.Recommendations) > 3 {
		parsed.Recommendations = parsed.Recommendations[:3]
	}
	return parsed.Recommendations, nil
}

// catalogSummary renders the full catalog as prompt context, one line per
// item.
func (s *InsightService) catalogSummary() (string, error) {
	var b strings.Builder

	services, err := s.catalogRepo.GetServices()
	if err != nil {
		return "", err
	}
	b.WriteString("Available Services:\n")
	for _, item := range services {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Desc: %s\n", item.ID, item.TitleEn, item.DescriptionEn)
	}

	courses, err := s.catalogRepo.GetCourses()
	if err != nil {
		return "", err
	}
	b.WriteString("\nAvailable Courses:\n")
	for _, item := range courses {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Desc: %s\n", item.ID, item.TitleEn, item.DescriptionEn)
	}

	projects, err := s.catalogRepo.GetProjects()
	if err != nil {
		return "", err
	}
	b.WriteString("\nAvailable Ready-made Projects:\n")
	for _, item := range projects {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Desc: %s\n", item.ID, item.TitleEn, item.DescriptionEn)
	}

	return b.String(), nil
}
