package consultation

import "github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"

// TranscriptionResponse carries the raw transcription plus speaker-tagged
// segments and, when the audio was archived, a link to the stored recording.
// Segments may be empty when speaker tagging failed.
type TranscriptionResponse struct {
	Text         string                       `json:"text"`
	Segments     []entities.TranscriptSegment `json:"segments"`
	RecordingURL string                       `json:"recording_url,omitempty"`
}

// EmbedResponse carries one embedding vector
type EmbedResponse struct {
	Embedding  []float32 `json:"embedding"`
	Dimensions int       `json:"dimensions"`
}

// CompareResponse carries a similarity score and its display form
type CompareResponse struct {
	Score   float64 `json:"score"`
	Percent string  `json:"percent"`
}
