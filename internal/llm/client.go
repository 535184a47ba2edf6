package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/KeithKrenek/resume-optimization/internal/schemas"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateStructured runs one generation task and returns its JSON output.
	// The input is marshaled into the task prompt; the output is cleaned,
	// checked for JSON validity, and validated against the task's schema.
	GenerateStructured(ctx context.Context, task TaskKind, input any) (json.RawMessage, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// Error reports a generation task that failed after exhausting its attempts.
type Error struct {
	Task     TaskKind
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("task %s failed after %d attempts: %v", e.Task, e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	// case ProviderAnthropic:
	//     return NewClaudeClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	logger *zap.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		logger: zap.L(),
	}, nil
}

// GenerateStructured runs one generation task against the tier configured for
// it, retrying with exponential backoff when the call fails or the output
// does not satisfy the task's contract.
func (c *GeminiClient) GenerateStructured(ctx context.Context, task TaskKind, input any) (json.RawMessage, error) {
	tier := c.config.TierFor(task)
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	prompt, err := BuildTaskPrompt(task, input)
	if err != nil {
		return nil, err
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.Temperature)
	model.ResponseMIMEType = "application/json"

	attempts := c.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := sleepBackoff(ctx, attempt-1); err != nil {
				return nil, err
			}
		}

		raw, err := c.generateOnce(ctx, model, prompt)
		if err != nil {
			lastErr = err
			c.logger.Warn("generation attempt failed",
				zap.String("task", string(task)),
				zap.String("model", modelName),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		if c.config.ValidateOutputs {
			if err := schemas.ValidateDocument(string(task), raw); err != nil {
				lastErr = err
				c.logger.Warn("task output failed schema validation",
					zap.String("task", string(task)),
					zap.Int("attempt", attempt),
					zap.Error(err))
				continue
			}
		}

		return raw, nil
	}

	return nil, &Error{Task: task, Attempts: attempts, Err: lastErr}
}

// generateOnce performs a single model call and returns the cleaned JSON payload.
func (c *GeminiClient) generateOnce(ctx context.Context, model *genai.GenerativeModel, prompt string) (json.RawMessage, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	cleaned := CleanJSONBlock(text)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("response is not valid JSON: %s", preview(cleaned))
	}

	return json.RawMessage(cleaned), nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// sleepBackoff waits 2^n seconds or until the context is done.
func sleepBackoff(ctx context.Context, n int) error {
	delay := time.Duration(1<<n) * time.Second
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// preview truncates text for error messages.
func preview(text string) string {
	const max = 120
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
