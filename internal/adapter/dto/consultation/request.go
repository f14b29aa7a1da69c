package consultation

// AnalyzeRequest asks for a SOAP draft from a consultation transcript
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
	Context    string `json:"context,omitempty"`
}

// EmbedRequest asks for the embedding vector of a single text
type EmbedRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// CompareRequest asks for a similarity score between the AI draft text and
// the doctor's edited text
type CompareRequest struct {
	AIText     string `json:"ai_text" validate:"required,min=1"`
	DoctorText string `json:"doctor_text" validate:"required,min=1"`
}
