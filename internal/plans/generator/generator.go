package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/career-compass/career-compass-backend/internal/plans/domain"
	"github.com/career-compass/career-compass-backend/internal/plans/prompt"
)

// Config is injected at construction time; the credential is not re-read
// from the environment per call.
type Config struct {
	APIKey string
	Model  string
}

// Generator wraps the Gemini API for learning-plan generation. The client
// is built once in New and reused across calls; without a credential the
// client stays nil and every Generate call fails with ErrMissingAPIKey.
type Generator struct {
	client *genai.Client
	model  string
}

func New(cfg Config) (*Generator, error) {
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	g := &Generator{model: model}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

// Generate builds the prompt, asks Gemini for a JSON-mime response, and
// decodes it into a validated LearningPlan. Failures are distinguished by
// kind: domain.ErrMissingAPIKey, domain.ErrUpstream, domain.ErrMalformedPlan.
func (g *Generator) Generate(ctx context.Context, req domain.PlanRequest) (*domain.LearningPlan, error) {
	if g.client == nil {
		log.Printf("[plans] generation refused: GEMINI_API_KEY is not set")
		return nil, domain.ErrMissingAPIKey
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt.Build(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		log.Printf("[plans] gemini generate: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		log.Printf("[plans] gemini blocked prompt: %s %s", resp.PromptFeedback.BlockReason, resp.PromptFeedback.BlockReasonMessage)
		return nil, fmt.Errorf("%w: prompt blocked (%s)", domain.ErrUpstream, resp.PromptFeedback.BlockReason)
	}

	plan, err := decodePlan(resp.Text())
	if err != nil {
		log.Printf("[plans] decode response: %v", err)
		return nil, err
	}
	return plan, nil
}

// decodePlan parses the model's text output into a validated LearningPlan.
// Fenced output slips through even with a JSON mime type requested, so the
// fences are stripped before decoding.
func decodePlan(raw string) (*domain.LearningPlan, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrMalformedPlan)
	}

	var plan domain.LearningPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func stripFences(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
