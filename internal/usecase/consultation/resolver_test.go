package consultation

import (
	"testing"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

func testCatalog() []entities.MedicalProtocol {
	return []entities.MedicalProtocol{
		{
			ID:             "proto-test-i10",
			Name:           "Hypertension",
			ICD10:          "I10",
			Authority:      "test authority",
			SubjectiveKeys: []string{"cao huyết áp"},
			PlanGuidelines: "guidelines",
		},
		{
			ID:             "proto-test-j02",
			Name:           "viêm họng",
			ICD10:          "J02.9",
			Authority:      "test authority",
			SubjectiveKeys: []string{"đau họng"},
			PlanGuidelines: "guidelines",
		},
	}
}

func TestResolver_ICDMatchTakesPriority(t *testing.T) {
	r := NewResolver(testCatalog())

	// Diagnosis text names a different protocol, ICD code still wins
	proto := r.Find("bệnh nhân bị viêm họng", []string{"I10"})
	if proto == nil {
		t.Fatal("expected a match")
	}
	if proto.ID != "proto-test-i10" {
		t.Fatalf("expected ICD match to win, got %s", proto.ID)
	}
}

func TestResolver_ICDMatchIsCaseInsensitive(t *testing.T) {
	r := NewResolver(testCatalog())

	proto := r.Find("", []string{"i10"})
	if proto == nil || proto.ID != "proto-test-i10" {
		t.Fatal("expected case-insensitive ICD match")
	}
}

func TestResolver_NameSubstringMatch(t *testing.T) {
	r := NewResolver(testCatalog())

	proto := r.Find("bệnh nhân bị viêm họng", nil)
	if proto == nil {
		t.Fatal("expected a match")
	}
	if proto.ID != "proto-test-j02" {
		t.Fatalf("expected name substring match, got %s", proto.ID)
	}
}

func TestResolver_SubjectiveKeyMatch(t *testing.T) {
	r := NewResolver(testCatalog())

	proto := r.Find("theo dõi tình trạng cao huyết áp lâu năm", []string{"Z99"})
	if proto == nil || proto.ID != "proto-test-i10" {
		t.Fatal("expected subjective key match")
	}
}

func TestResolver_NoMatch(t *testing.T) {
	r := NewResolver(testCatalog())

	if proto := r.Find("gãy xương cẳng tay", []string{"S52"}); proto != nil {
		t.Fatalf("expected nil, got %s", proto.ID)
	}
	if proto := r.Find("", nil); proto != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestDefaultCatalog_HasValidEntries(t *testing.T) {
	for _, proto := range DefaultCatalog() {
		if proto.ID == "" || proto.Name == "" || proto.ICD10 == "" {
			t.Fatalf("incomplete catalog entry: %+v", proto)
		}
		if proto.Authority == "" || proto.PlanGuidelines == "" {
			t.Fatalf("catalog entry %s missing grounding text", proto.ID)
		}
		if len(proto.SubjectiveKeys) == 0 {
			t.Fatalf("catalog entry %s has no subjective keys", proto.ID)
		}
	}
}
