package similarity

import (
	"context"
	"fmt"
	"math"
	"testing"

	"go.uber.org/zap"
)

// stubEmbedder maps texts to fixed vectors
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) EmbedContent(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	vec, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func TestCompare_ScoresBothTexts(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"ai draft":    {1, 0, 0},
		"doctor note": {1, 1, 0},
	}}
	svc := NewService(embedder, zap.NewNop())

	result, err := svc.Compare(context.Background(), "ai draft", "doctor note")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	want := 1 / math.Sqrt2
	if math.Abs(result.Score-want) > 1e-9 {
		t.Fatalf("score = %f, want %f", result.Score, want)
	}
	if result.AIText != "ai draft" || result.DoctorText != "doctor note" {
		t.Fatal("source texts not carried through")
	}
	if len(result.AIEmbedding) != 3 || len(result.DoctorEmbedding) != 3 {
		t.Fatal("embeddings not carried through")
	}
}

func TestCompare_DimensionMismatchIsHardError(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {1, 0, 0},
	}}
	svc := NewService(embedder, zap.NewNop())

	if _, err := svc.Compare(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected dimensionality mismatch error")
	}
}

func TestCompare_EmbeddingFailureAborts(t *testing.T) {
	svc := NewService(&stubEmbedder{err: fmt.Errorf("quota exceeded")}, zap.NewNop())

	if _, err := svc.Compare(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected embedding error to propagate")
	}
}

func TestCompare_EmptyTextRejected(t *testing.T) {
	svc := NewService(&stubEmbedder{}, zap.NewNop())

	if _, err := svc.Compare(context.Background(), "", "b"); err == nil {
		t.Fatal("expected error for empty ai text")
	}
	if _, err := svc.Compare(context.Background(), "a", ""); err == nil {
		t.Fatal("expected error for empty doctor text")
	}
}

func TestEmbed(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{"hello": {0.1, 0.2}}}
	svc := NewService(embedder, zap.NewNop())

	vec, err := svc.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if len(vec) != 2 {
		t.Fatalf("unexpected vector: %v", vec)
	}

	if _, err := svc.Embed(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}
