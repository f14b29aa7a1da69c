package entities

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ComparisonRecord stores the AI draft snapshot next to the doctor's final
// text together with the similarity score and the embeddings it was computed
// from, for audit
type ComparisonRecord struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MedicalRecordID uuid.UUID       `json:"medical_record_id" gorm:"type:uuid;not null;index"`
	AIResults       datatypes.JSON  `json:"ai_results" gorm:"type:jsonb"`
	DoctorResults   datatypes.JSON  `json:"doctor_results" gorm:"type:jsonb"`
	MatchScore      float64         `json:"match_score"`
	AIEmbedding     pgvector.Vector `json:"-" gorm:"type:vector(3072)"`
	DoctorEmbedding pgvector.Vector `json:"-" gorm:"type:vector(3072)"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ComparisonRecord) TableName() string {
	return "comparison_records"
}
