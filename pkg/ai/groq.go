package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

// GroqClient is a minimal client for Groq API calls: chat completions for
// clinical analysis and Whisper for audio transcription
type GroqClient struct {
	apiKey    string
	baseURL   string
	chatModel string
	sttModel  string
	language  string
	client    *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	chatModel := "llama-3.3-70b-versatile"
	sttModel := "whisper-large-v3"
	language := "vi"
	if cfg != nil {
		if cfg.ChatModel != "" {
			chatModel = cfg.ChatModel
		}
		if cfg.STTModel != "" {
			sttModel = cfg.STTModel
		}
		if cfg.Language != "" {
			language = cfg.Language
		}
	}

	return &GroqClient{
		apiKey:    apiKey,
		baseURL:   base,
		chatModel: chatModel,
		sttModel:  sttModel,
		language:  language,
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatMessage is one message in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat requests a specific completion output format
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// transcriptionResponse is the Whisper endpoint response shape
type transcriptionResponse struct {
	Text string `json:"text"`
}

// ChatCompletion sends a chat completion request and returns the assistant content.
// An empty req.Model falls back to the configured chat model.
func (g *GroqClient) ChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = g.chatModel
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", apperrors.ErrAIQuotaExceeded()
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}

// TranscribeAudio uploads an audio blob to the Whisper endpoint and returns
// the transcribed text. The language hint comes from configuration.
func (g *GroqClient) TranscribeAudio(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to buffer audio: %w", err)
	}
	if err := mw.WriteField("model", g.sttModel); err != nil {
		return "", err
	}
	if err := mw.WriteField("language", g.language); err != nil {
		return "", err
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq whisper returned status %d", resp.StatusCode)
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}
