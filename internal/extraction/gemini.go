package extraction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/parseerror"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  logging.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a GeminiClient. The underlying API client is
// initialized lazily on first use.
func NewGeminiClient(apiKey, model string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// ensureClient initializes the Gemini API client if it hasn't been yet.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}

	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	return nil
}

// Extract sends the utterance to Gemini and returns the raw textual response.
// The call races against the configured timeout; when the deadline fires the
// underlying request is cancelled and a TimeoutError is returned.
func (c *GeminiClient) Extract(ctx context.Context, text string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "extract"},
		logging.Field{Key: "model", Value: c.model},
	).Debug("Sending utterance to Gemini")

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(text)))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &parseerror.TimeoutError{Timeout: c.timeout, Err: err}
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &parseerror.UnparseableError{Err: fmt.Errorf("empty response from Gemini API")}
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
