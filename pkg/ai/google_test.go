package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

func TestEmbedContent_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-embedding-001:embedContent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Fatalf("unexpected api key header %s", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"embedding": map[string]interface{}{
				"values": []float32{0.1, -0.2, 0.3},
			},
		})
	}))
	defer ts.Close()

	client := NewGoogleAIClient(&config.GoogleAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	vec, err := client.EmbedContent(context.Background(), "đau đầu, chóng mặt")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("unexpected vector length %d", len(vec))
	}
	if vec[1] != -0.2 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func TestEmbedContent_EmptyValues(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"embedding": map[string]interface{}{"values": []float32{}},
		})
	}))
	defer ts.Close()

	client := NewGoogleAIClient(&config.GoogleAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.EmbedContent(context.Background(), "text"); err == nil {
		t.Fatal("expected error for empty embedding")
	}
}

func TestEmbedContent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewGoogleAIClient(&config.GoogleAIConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.EmbedContent(context.Background(), "text"); err == nil {
		t.Fatal("expected error for http failure")
	}
}
