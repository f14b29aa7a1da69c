package entities

// MedicalProtocol is a citable treatment guideline keyed by diagnosis name or
// ICD-10 code. The catalog is loaded once and read-only for the lifetime of
// the process.
type MedicalProtocol struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ICD10          string   `json:"icd10"`
	Authority      string   `json:"authority"`
	SubjectiveKeys []string `json:"subjective_keys"`
	PlanGuidelines string   `json:"plan_guidelines"`
}
