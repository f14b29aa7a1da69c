package consultation

import (
	"strings"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// Resolver looks up treatment protocols from the static catalog. Lookup is
// deterministic and stateless: no fuzzy scoring, first catalog entry
// satisfying a rule wins.
type Resolver struct {
	catalog []entities.MedicalProtocol
}

// NewResolver creates a resolver over the given protocol catalog
func NewResolver(catalog []entities.MedicalProtocol) *Resolver {
	return &Resolver{catalog: catalog}
}

// Find returns the matching protocol or nil. ICD-10 code match takes priority
// over name and keyword matches regardless of the diagnosis text.
func (r *Resolver) Find(diagnosis string, icdCodes []string) *entities.MedicalProtocol {
	codes := make([]string, 0, len(icdCodes))
	for _, c := range icdCodes {
		codes = append(codes, strings.ToUpper(strings.TrimSpace(c)))
	}

	// 1. Exact ICD-10 code match
	for i := range r.catalog {
		proto := &r.catalog[i]
		icd := strings.ToUpper(proto.ICD10)
		for _, c := range codes {
			if c != "" && c == icd {
				return proto
			}
		}
	}

	// 2. Protocol name or subjective keyword as substring of the diagnosis
	diag := strings.ToLower(diagnosis)
	if strings.TrimSpace(diag) == "" {
		return nil
	}

	for i := range r.catalog {
		proto := &r.catalog[i]
		if strings.Contains(diag, strings.ToLower(proto.Name)) {
			return proto
		}
		for _, key := range proto.SubjectiveKeys {
			if strings.Contains(diag, strings.ToLower(key)) {
				return proto
			}
		}
	}

	return nil
}
