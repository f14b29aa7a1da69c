package errors

// ErrorCode identifies a failure class in API responses and logs.
// Values are stable; retired codes are not reused.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Consultation input
	ErrorCode_MISSING_TRANSCRIPT ErrorCode = 2000
	ErrorCode_MISSING_AUDIO      ErrorCode = 2001
	ErrorCode_MISSING_TEXT       ErrorCode = 2002
	ErrorCode_MISSING_BOOKING_ID ErrorCode = 2003

	// AI pipeline
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_EMBEDDING_FAILED     ErrorCode = 3002
	ErrorCode_AI_COMPARISON_FAILED    ErrorCode = 3003
	ErrorCode_AI_QUOTA_EXCEEDED       ErrorCode = 3005

	// Patients and bookings
	ErrorCode_PATIENT_NOT_FOUND ErrorCode = 4000
	ErrorCode_BOOKING_NOT_FOUND ErrorCode = 4001

	// Infrastructure
	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_MISSING_TRANSCRIPT:      "MISSING_TRANSCRIPT",
	ErrorCode_MISSING_AUDIO:           "MISSING_AUDIO",
	ErrorCode_MISSING_TEXT:            "MISSING_TEXT",
	ErrorCode_MISSING_BOOKING_ID:      "MISSING_BOOKING_ID",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_EMBEDDING_FAILED:     "AI_EMBEDDING_FAILED",
	ErrorCode_AI_COMPARISON_FAILED:    "AI_COMPARISON_FAILED",
	ErrorCode_AI_QUOTA_EXCEEDED:       "AI_QUOTA_EXCEEDED",
	ErrorCode_PATIENT_NOT_FOUND:       "PATIENT_NOT_FOUND",
	ErrorCode_BOOKING_NOT_FOUND:       "BOOKING_NOT_FOUND",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
