package entities

import "strings"

// PlaceholderPending is the sentinel written into every draft field the
// pipeline has not filled yet. Consumers always see this sentinel or real
// content, never an absent field.
const PlaceholderPending = "Đang cập nhật"

// ConsultationDraft is the accumulating record for one recording session.
// It is mutated successively by the pipeline stages of a single consultation
// run and never shared between runs.
type ConsultationDraft struct {
	Subjective     string   `json:"subjective"`
	Objective      string   `json:"objective"`
	Assessment     string   `json:"assessment"`
	Plan           string   `json:"plan"`
	Diagnosis      string   `json:"diagnosis"`
	ICDCodes       []string `json:"icd_codes"`
	MedicalAdvice  string   `json:"medical_advice"`
	RiskAssessment string   `json:"risk_assessment"`
	ProtocolSource string   `json:"protocol_source,omitempty"`
}

// NewConsultationDraft creates a draft with every field set to its sentinel
func NewConsultationDraft() *ConsultationDraft {
	return &ConsultationDraft{
		Subjective:     PlaceholderPending,
		Objective:      PlaceholderPending,
		Assessment:     PlaceholderPending,
		Plan:           PlaceholderPending,
		Diagnosis:      PlaceholderPending,
		ICDCodes:       []string{},
		MedicalAdvice:  PlaceholderPending,
		RiskAssessment: PlaceholderPending,
		ProtocolSource: "",
	}
}

// HasDiagnosis reports whether the draft carries a real diagnosis or at least
// one ICD-10 code. Plan refinement is skipped when it does not.
func (d *ConsultationDraft) HasDiagnosis() bool {
	if len(d.ICDCodes) > 0 {
		return true
	}
	diag := strings.TrimSpace(d.Diagnosis)
	return diag != "" && diag != PlaceholderPending
}
