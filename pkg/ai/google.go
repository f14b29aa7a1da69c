package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

// GoogleAIClient is a minimal client for the Google Generative AI embedding API
type GoogleAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGoogleAIClient creates a Google AI client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewGoogleAIClient(cfg *config.GoogleAIConfig) *GoogleAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_AI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GOOGLE_AI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	model := "gemini-embedding-001"
	if cfg != nil && cfg.EmbeddingModel != "" {
		model = cfg.EmbeddingModel
	}

	return &GoogleAIClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// embedContentRequest is the payload for :embedContent
type embedContentRequest struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
}

// embedContentResponse is a minimal response shape
type embedContentResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

// EmbedContent generates an embedding vector for the given text
func (c *GoogleAIClient) EmbedContent(ctx context.Context, text string) ([]float32, error) {
	var payload embedContentRequest
	payload.Content.Parts = []struct {
		Text string `json:"text"`
	}{{Text: text}}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:embedContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("google ai returned status %d", resp.StatusCode)
	}

	var er embedContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, err
	}
	if len(er.Embedding.Values) == 0 {
		return nil, fmt.Errorf("invalid response from google embedding api")
	}
	return er.Embedding.Values, nil
}
