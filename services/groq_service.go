package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"nutritrack/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GroqService talks to the Groq OpenAI-compatible API. It is the nutrition
// estimator, the profile target planner, and the diet chat assistant.
type GroqService struct {
	llm llms.Model
}

func NewGroqService() (*GroqService, error) {
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = "llama3-8b-8192"
	}

	llm, err := openai.New(
		openai.WithToken(os.Getenv("GROQ_API_KEY")),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init groq client: %w", err)
	}
	return &GroqService{llm: llm}, nil
}

// EstimateNutrition asks the model for an approximate nutrient record for a
// food description and parses the JSON it returns.
func (g *GroqService) EstimateNutrition(ctx context.Context, description string) (models.NutrientMap, error) {
	prompt := fmt.Sprintf(`Give me approximate nutrition in JSON for this food: %s. Format:
{"calories":200,"protein":10,"fat":5,"carbs":30,"sugar":2,"calcium":20}
Respond with valid JSON only, no text outside it.`, description)

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return nil, &EstimationError{Msg: "groq call failed", Cause: err}
	}

	var delta models.NutrientMap
	if err := json.Unmarshal([]byte(stripCodeFences(out)), &delta); err != nil {
		return nil, &EstimationError{Msg: "unparseable estimator output", Cause: err}
	}
	return delta, nil
}

// PlanTargets asks the model for realistic daily targets from the profile's
// biometrics, goal and activity level.
func (g *GroqService) PlanTargets(ctx context.Context, p *models.UserProfile) (MacroSet, error) {
	prompt := fmt.Sprintf(`You are a nutrition and fitness assistant.
Based on the following user details:
Age: %d, Gender: %s,
Height: %.1f%s,
Weight: %.1f%s,
Goal: %s,
Physical Activity: %s.
Provide realistic daily target nutrition values (calories, protein, fat, carb)
in valid JSON format ONLY like:
{"calories":2200,"protein":120,"fat":70,"carb":250}
Do not include any text outside JSON.`,
		p.Age, p.Gender, p.Height, p.HeightUnit, p.Weight, p.WeightUnit, p.Goal, p.PhysicalActivity)

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return MacroSet{}, &EstimationError{Msg: "groq call failed", Cause: err}
	}

	var targets MacroSet
	if err := json.Unmarshal([]byte(stripCodeFences(out)), &targets); err != nil {
		return MacroSet{}, &EstimationError{Msg: "unparseable target output", Cause: err}
	}
	return targets, nil
}

var dietKeywords = []string{
	"food", "calorie", "diet", "nutrition", "protein", "carbs", "fat", "meal",
	"fitness", "weight", "muscle", "exercise", "workout", "hydration", "water",
	"breakfast", "lunch", "dinner", "snack", "vitamin", "sugar", "fiber",
	"vegan", "vegetarian", "keto", "macros", "supplement", "metabolism",
}

const offTopicReply = "Sorry, I can't answer that — but let's stick to food, calories & diet plans."

const quotaReply = "My brain needs some rest right now. Quick tip while I recover: eat balanced meals with protein, carbs, and veggies."

// Chat answers diet and fitness questions. Off-topic prompts get a canned
// redirect; upstream failures degrade to a friendly fallback instead of an
// error, matching the product behavior.
func (g *GroqService) Chat(ctx context.Context, prompt string) string {
	lower := strings.ToLower(prompt)
	onTopic := false
	for _, kw := range dietKeywords {
		if strings.Contains(lower, kw) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		return offTopicReply
	}

	full := "You are a diet and fitness assistant. Only give answers related to food, calories, diet, nutrition, and fitness. Do not answer unrelated topics.\n\nUser question: " + prompt
	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, full)
	if err != nil {
		return quotaReply
	}
	return out
}

// stripCodeFences removes markdown ```json fences and line breaks that models
// wrap around JSON payloads.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
