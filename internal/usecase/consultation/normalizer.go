package consultation

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	pkgai "github.com/clinicscribe-team/clinic-scribe/pkg/ai"
)

const normalizerSystemPrompt = `Bạn là một chuyên gia hiệu đính hồ sơ y tế.
Nhiệm vụ:
1. Phân tách đoạn hội thoại sau thành các lượt nói của "Bác sĩ" và "Bệnh nhân".
2. Sửa lỗi chính tả các thuật ngữ y tế (ví dụ: "bi huyết áp" -> "bị huyết áp", "icd" -> "ICD").
3. Trả về định dạng JSON: {"segments": [{"role": "doctor" | "patient", "text": "..."}]}`

// NormalizedTranscript is the normalizer output: the raw transcription text
// plus speaker-tagged utterances. Segments may be empty when enrichment failed.
// RecordingURL is filled by the pipeline when the audio was archived.
type NormalizedTranscript struct {
	RawText      string                       `json:"text"`
	Segments     []entities.TranscriptSegment `json:"segments"`
	RecordingURL string                       `json:"recording_url,omitempty"`
}

// Normalizer splits a raw transcription into doctor and patient turns and
// corrects common medical term mis-transcriptions
type Normalizer struct {
	llm         LLM
	temperature float64
	logger      *zap.Logger
}

// NewNormalizer creates a transcript normalizer
func NewNormalizer(llm LLM, temperature float64, logger *zap.Logger) *Normalizer {
	return &Normalizer{llm: llm, temperature: temperature, logger: logger}
}

// Normalize tags speaker turns in rawText. Segment enrichment is non-critical:
// an unparseable model response degrades to empty segments with the raw text
// intact, only transport errors propagate.
func (n *Normalizer) Normalize(ctx context.Context, rawText string) (*NormalizedTranscript, error) {
	result := &NormalizedTranscript{
		RawText:  rawText,
		Segments: []entities.TranscriptSegment{},
	}

	if rawText == "" {
		return result, nil
	}

	content, err := n.llm.ChatCompletion(ctx, pkgai.ChatRequest{
		Messages: []pkgai.ChatMessage{
			{Role: "system", Content: normalizerSystemPrompt},
			{Role: "user", Content: rawText},
		},
		Temperature:    n.temperature,
		ResponseFormat: &pkgai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Segments []struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"segments"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		if n.logger != nil {
			n.logger.Warn("failed to parse speaker segments, keeping raw transcript",
				zap.Error(err),
			)
		}
		return result, nil
	}

	for _, seg := range parsed.Segments {
		speaker := entities.SpeakerPatient
		if seg.Role == "doctor" {
			speaker = entities.SpeakerDoctor
		}
		result.Segments = append(result.Segments, entities.TranscriptSegment{
			Speaker: speaker,
			Text:    seg.Text,
		})
	}

	return result, nil
}
