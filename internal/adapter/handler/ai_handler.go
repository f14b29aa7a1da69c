package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	consultationdto "github.com/clinicscribe-team/clinic-scribe/internal/adapter/dto/consultation"
	consultationuc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/consultation"
	similarityuc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/similarity"
)

// AI handles the consultation pipeline endpoints
type AI struct {
	consultation consultationuc.Service
	similarity   *similarityuc.Service
	logger       *zap.Logger
}

// NewAI creates the AI handler
func NewAI(consultation consultationuc.Service, similarity *similarityuc.Service, logger *zap.Logger) *AI {
	return &AI{
		consultation: consultation,
		similarity:   similarity,
		logger:       logger,
	}
}

// Transcribe accepts a multipart audio upload, transcribes it and tags
// speaker turns
func (h *AI) Transcribe(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingAudioFile())
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}
	defer src.Close()

	result, err := h.consultation.Transcribe(
		c.Request().Context(),
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, consultationdto.TranscriptionResponse{
		Text:         result.RawText,
		Segments:     result.Segments,
		RecordingURL: result.RecordingURL,
	})
}

// Analyze drafts a SOAP note from a transcript
func (h *AI) Analyze(c echo.Context) error {
	var req consultationdto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingTranscript())
	}

	draft, err := h.consultation.Analyze(c.Request().Context(), req.Transcript, req.Context)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, draft)
}

// Embed returns the embedding vector for a text
func (h *AI) Embed(c echo.Context) error {
	var req consultationdto.EmbedRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingText())
	}

	vec, err := h.similarity.Embed(c.Request().Context(), req.Text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, consultationdto.EmbedResponse{
		Embedding:  vec,
		Dimensions: len(vec),
	})
}

// Compare scores agreement between the AI draft and the doctor's edited text
func (h *AI) Compare(c echo.Context) error {
	var req consultationdto.CompareRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingText())
	}

	result, err := h.similarity.Compare(c.Request().Context(), req.AIText, req.DoctorText)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, consultationdto.CompareResponse{
		Score:   result.Score,
		Percent: similarityuc.FormatPercent(result.Score),
	})
}
