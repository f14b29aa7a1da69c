package entities

// Speaker identifies which side of the consultation a segment belongs to
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
)

// TranscriptSegment is one speaker turn in a normalized consultation
// transcript. Produced once by the normalizer and immutable thereafter.
type TranscriptSegment struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}
