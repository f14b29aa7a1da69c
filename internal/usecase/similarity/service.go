package similarity

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
)

// Embedder is the embedding surface the scorer consumes
type Embedder interface {
	EmbedContent(ctx context.Context, text string) ([]float32, error)
}

// Result carries the similarity score together with the two source texts and
// the embeddings it was computed from
type Result struct {
	Score           float64   `json:"score"`
	AIText          string    `json:"ai_text"`
	DoctorText      string    `json:"doctor_text"`
	AIEmbedding     []float32 `json:"-"`
	DoctorEmbedding []float32 `json:"-"`
}

// Service scores agreement between an AI draft and the doctor's edited text
type Service struct {
	embedder Embedder
	logger   *zap.Logger
}

// NewService creates a similarity service
func NewService(embedder Embedder, logger *zap.Logger) *Service {
	return &Service{embedder: embedder, logger: logger}
}

// Embed returns the embedding vector for a single text
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, apperrors.ErrMissingText()
	}

	vec, err := s.embedder.EmbedContent(ctx, text)
	if err != nil {
		return nil, apperrors.ErrAIEmbeddingFailed(err)
	}
	return vec, nil
}

// Compare embeds both texts and computes their cosine similarity. The two
// embedding calls are independent and issued concurrently.
func (s *Service) Compare(ctx context.Context, aiText, doctorText string) (*Result, error) {
	if aiText == "" || doctorText == "" {
		return nil, apperrors.ErrMissingText()
	}

	var aiVec, doctorVec []float32

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := s.embedder.EmbedContent(gctx, aiText)
		if err != nil {
			return err
		}
		aiVec = vec
		return nil
	})
	g.Go(func() error {
		vec, err := s.embedder.EmbedContent(gctx, doctorText)
		if err != nil {
			return err
		}
		doctorVec = vec
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.ErrAIEmbeddingFailed(err)
	}

	score, err := Cosine(aiVec, doctorVec)
	if err != nil {
		return nil, apperrors.ErrAIComparisonFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("📊 Similarity computed",
			zap.Float64("score", score),
			zap.Int("dimensions", len(aiVec)),
		)
	}

	return &Result{
		Score:           score,
		AIText:          aiText,
		DoctorText:      doctorText,
		AIEmbedding:     aiVec,
		DoctorEmbedding: doctorVec,
	}, nil
}
