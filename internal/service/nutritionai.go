package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// NutritionEstimate is the structure the AI returns for a food.
// Macro values are per single portion as described.
type NutritionEstimate struct {
	FoodName    string  `json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	WeightGrams float64 `json:"weight_grams"`
	Confidence  float64 `json:"confidence"`
}

// NutritionAI is the AI provider surface the analysis and coaching
// services depend on. Tests substitute a stub.
type NutritionAI interface {
	EstimateNutrition(ctx context.Context, description string) (*NutritionEstimate, error)
	DailyAdvice(ctx context.Context, prompt string) (string, error)
}

// AIService talks to a DeepSeek-compatible chat completions API.
type AIService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewAIService creates an AIService. The API key must not be empty.
func NewAIService(apiKey, apiURL string) (*AIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI API key must be set")
	}
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	return &AIService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat completions API
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

const nutritionSystemPrompt = `You are a nutrition expert. Given a food description, respond only with JSON like:
{
    "food_name": "Grilled chicken breast",
    "calories": 250,
    "protein": 30,
    "carbs": 0,
    "fat": 12,
    "weight_grams": 170,
    "confidence": 0.85
}

Note: all numeric fields must be numbers, not strings.
confidence is your certainty in the identification, between 0 and 1.
weight_grams is your best estimate of the portion weight.`

// EstimateNutrition asks the AI for a nutrition breakdown of a described food.
func (s *AIService) EstimateNutrition(ctx context.Context, description string) (*NutritionEstimate, error) {
	messages := []Message{
		{Role: "system", Content: nutritionSystemPrompt},
		{Role: "user", Content: "Estimate the nutrition for: " + description},
	}

	content, err := s.chatCompletion(ctx, messages, 0.2)
	if err != nil {
		return nil, err
	}

	var estimate NutritionEstimate
	if err := json.Unmarshal([]byte(content), &estimate); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition estimate: %w", err)
	}

	if estimate.FoodName == "" {
		estimate.FoodName = strings.TrimSpace(description)
	}
	if estimate.Confidence < 0 {
		estimate.Confidence = 0
	}
	if estimate.Confidence > 1 {
		estimate.Confidence = 1
	}

	return &estimate, nil
}

// DailyAdvice asks the AI for a short coaching message. The prompt carries
// the day's totals, the user's goals and the coach memory summary.
func (s *AIService) DailyAdvice(ctx context.Context, prompt string) (string, error) {
	messages := []Message{
		{
			Role: "system",
			Content: `You are a supportive nutrition coach. Respond only with JSON like {"advice":"...","summary":"..."}.
advice is a short encouraging message for the user (2-3 sentences).
summary is a one-line note for your own memory about this user's day.`,
		},
		{Role: "user", Content: prompt},
	}

	return s.chatCompletion(ctx, messages, 0.7)
}

func (s *AIService) chatCompletion(ctx context.Context, messages []Message, temperature float64) (string, error) {
	reqBody := Request{
		Model:    "deepseek-chat",
		Messages: messages,
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[AIService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
