package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const requestTimeout = 30 * time.Second

// ModelClient is the single remote operation the handlers depend on,
// kept narrow so tests can substitute a double.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiClient issues single-attempt completion requests to the Gemini
// API. Retry policy is left to the caller.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiClient) Close() {
	g.client.Close()
}

// Complete sends one completion request with a bounded timeout and
// returns the raw response text. Failures are classified into ErrAuth
// (rejected credentials) or ErrProvider (everything else, including
// timeout and empty responses).
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrProvider)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: unexpected response part type", ErrProvider)
	}

	return string(text), nil
}

// classifyError separates credential rejections from the rest of the
// provider failure modes so handlers can answer 401 vs 502.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return fmt.Errorf("%w: provider rejected credentials: %v", ErrAuth, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}
