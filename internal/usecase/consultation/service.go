package consultation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
	"github.com/clinicscribe-team/clinic-scribe/pkg/config"
)

// LLM is the chat-completion surface the pipeline stages consume
type LLM interface {
	ChatCompletion(ctx context.Context, req pkgai.ChatRequest) (string, error)
}

// Transcriber is the speech-to-text surface
type Transcriber interface {
	TranscribeAudio(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Storage archives consultation recordings. Optional: a nil Storage skips
// archival.
type Storage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// recordingURLExpiry bounds how long an archived recording link stays valid
const recordingURLExpiry = 24 * time.Hour

// Service orchestrates the consultation pipeline: transcription, speaker
// normalization, SOAP drafting, protocol resolution and plan refinement
type Service interface {
	Transcribe(ctx context.Context, filename string, contentType string, audio io.Reader) (*NormalizedTranscript, error)
	Analyze(ctx context.Context, transcript, contextInfo string) (*entities.ConsultationDraft, error)
}

type consultationService struct {
	transcriber Transcriber
	storage     Storage
	normalizer  *Normalizer
	composer    *Composer
	resolver    *Resolver
	refiner     *Refiner
	logger      *zap.Logger
}

// NewService constructs the consultation pipeline service
func NewService(
	llm LLM,
	transcriber Transcriber,
	storage Storage,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	temperature := 0.1
	if cfg != nil {
		temperature = cfg.Groq.Temperature
	}

	return &consultationService{
		transcriber: transcriber,
		storage:     storage,
		normalizer:  NewNormalizer(llm, temperature, logger),
		composer:    NewComposer(llm, temperature, logger),
		resolver:    NewResolver(DefaultCatalog()),
		refiner:     NewRefiner(llm, temperature, logger),
		logger:      logger,
	}
}

// Transcribe archives the audio blob, submits it for speech-to-text with
// bounded retries and tags speaker turns in the result
func (s *consultationService) Transcribe(ctx context.Context, filename string, contentType string, audio io.Reader) (*NormalizedTranscript, error) {
	if audio == nil {
		return nil, apperrors.ErrMissingAudioFile()
	}

	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, apperrors.ErrMissingAudioFile()
	}

	var recordingURL string
	if s.storage != nil {
		objectName := fmt.Sprintf("recordings/%s-%s", uuid.New().String(), filename)
		if err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			// Archival is best effort, transcription still proceeds
			if s.logger != nil {
				s.logger.Warn("failed to archive recording",
					zap.String("object_name", objectName),
					zap.Error(err),
				)
			}
		} else {
			if s.logger != nil {
				s.logger.Info("📼 Recording archived",
					zap.String("object_name", objectName),
					zap.Int("size_bytes", len(data)),
				)
			}
			url, err := s.storage.GetFileURL(ctx, objectName, recordingURLExpiry)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("failed to generate recording URL",
						zap.String("object_name", objectName),
						zap.Error(err),
					)
				}
			} else {
				recordingURL = url
			}
		}
	}

	var rawText string
	submitFn := func() error {
		text, err := s.transcriber.TranscribeAudio(ctx, filename, bytes.NewReader(data))
		if err != nil {
			return err
		}
		rawText = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed after retries", zap.Error(err))
		}
		return nil, apperrors.ErrAITranscriptionFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("🎙️ Audio transcribed",
			zap.String("filename", filename),
			zap.Int("transcript_length", len(rawText)),
		)
	}

	result, err := s.normalizer.Normalize(ctx, rawText)
	if err != nil {
		return nil, err
	}
	result.RecordingURL = recordingURL
	return result, nil
}

// Analyze runs the drafting stages over a transcript: compose the SOAP draft,
// resolve a treatment protocol and refine the plan
func (s *consultationService) Analyze(ctx context.Context, transcript, contextInfo string) (*entities.ConsultationDraft, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.ErrMissingTranscript()
	}

	draft := entities.NewConsultationDraft()

	payload, err := s.composer.Compose(ctx, transcript, contextInfo)
	if err != nil {
		return nil, err
	}
	mergePayload(draft, payload)

	protocol := s.resolver.Find(draft.Diagnosis, draft.ICDCodes)
	if protocol != nil && s.logger != nil {
		s.logger.Info("📋 Treatment protocol matched",
			zap.String("protocol_id", protocol.ID),
			zap.String("icd10", protocol.ICD10),
		)
	}

	if err := s.refiner.Refine(ctx, draft, protocol); err != nil {
		return nil, err
	}

	return draft, nil
}

// mergePayload copies the composer's non-empty fields into the draft, leaving
// sentinels in place for everything the model did not fill
func mergePayload(draft *entities.ConsultationDraft, payload *DraftPayload) {
	if payload == nil {
		return
	}
	if payload.Subjective != "" {
		draft.Subjective = payload.Subjective
	}
	if payload.Objective != "" {
		draft.Objective = payload.Objective
	}
	if payload.Assessment != "" {
		draft.Assessment = payload.Assessment
	}
	if payload.Plan != "" {
		draft.Plan = payload.Plan
	}
	if payload.Diagnosis != "" {
		draft.Diagnosis = payload.Diagnosis
	}
	if payload.MedicalAdvice != "" {
		draft.MedicalAdvice = payload.MedicalAdvice
	}
	if payload.RiskAssessment != "" {
		draft.RiskAssessment = payload.RiskAssessment
	}
	draft.ICDCodes = NormalizeICDCodes(payload.ICDCodes)
}

// NormalizeICDCodes coerces the model's icd_codes value into an ordered slice
// of trimmed code strings. The model sometimes returns a comma-joined string
// instead of an array.
func NormalizeICDCodes(v any) []string {
	codes := []string{}

	switch raw := v.(type) {
	case nil:
		return codes
	case []string:
		for _, c := range raw {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
	case []interface{}:
		for _, item := range raw {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					codes = append(codes, s)
				}
			}
		}
	case string:
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				codes = append(codes, part)
			}
		}
	}

	return codes
}
