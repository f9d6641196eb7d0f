package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rojahomes/rentmarket/internal/config"
	"github.com/rojahomes/rentmarket/pkg/clients"
)

const model = "gpt-3.5-turbo"

var (
	ErrNotConfigured = errors.New("ai api key is not configured")
	ErrEmptyResponse = errors.New("ai returned no choices")
)

// Client calls the OpenAI chat-completions API for comment sentiment
// scoring and property description copy.
type Client struct {
	address string
	apiKey  string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address: cfg.OpenAIAddress,
		apiKey:  cfg.OpenAIKey,
		client:  client,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    []message{{Role: "system", Content: system}, {Role: "user", Content: user}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+c.apiKey)

	statusCode, respBody, err := c.client.Post(c.address+"/v1/chat/completions", headers, body)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var resp completionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if statusCode != http.StatusOK {
		if resp.Error != nil {
			return "", fmt.Errorf("ai returned status %d: %s", statusCode, resp.Error.Message)
		}
		return "", fmt.Errorf("ai returned status %d", statusCode)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// RateSentiment scores a property comment from 1 (very negative) to
// 5 (very positive). Out-of-range answers are clamped.
func (c *Client) RateSentiment(ctx context.Context, text string) (float64, error) {
	const system = "You are a sentiment analysis expert. Rate the following property comment on a scale of 1 to 5, where 1 is very negative and 5 is very positive. Only respond with a single number."

	answer, err := c.complete(ctx, system, text, 10, 0.3)
	if err != nil {
		return 0, err
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected sentiment answer %q: %w", answer, err)
	}
	return clamp(rating, 1, 5), nil
}

// GenerateDescription writes listing copy for a property.
func (c *Client) GenerateDescription(ctx context.Context, title, houseType, location string, bedrooms, bathrooms int, features []string) (string, error) {
	prompt := fmt.Sprintf(`Please provide a detailed property description to attract potential tenants by highlighting key aspects using the given description below:

Property Details:
- Title: %s
- Type: %s
- Location: %s
- Bedrooms: %d
- Bathrooms: %d
- Features: %s

Start by describing the property type and include specifics like the number of bedrooms and bathrooms. Next, emphasize unique features that set this property apart. Finally, include details about any additional amenities.`,
		title, houseType, location, bedrooms, bathrooms, strings.Join(features, ", "))

	return c.complete(ctx, "You are a professional real estate copywriter.", prompt, 500, 0.7)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
