package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordStatus represents the state of a persisted medical record
type RecordStatus string

const (
	RecordStatusDraft     RecordStatus = "draft"
	RecordStatusCompleted RecordStatus = "completed"
)

// MedicalRecord is the doctor-confirmed SOAP note for one booking
type MedicalRecord struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BookingID   uuid.UUID      `json:"booking_id" gorm:"type:uuid;not null;index"`
	Subjective  string         `json:"subjective,omitempty" gorm:"type:text"`
	Objective   string         `json:"objective,omitempty" gorm:"type:text"`
	Assessment  string         `json:"assessment,omitempty" gorm:"type:text"`
	Plan        string         `json:"plan,omitempty" gorm:"type:text"`
	Diagnosis   string         `json:"diagnosis,omitempty" gorm:"type:text"`
	ICDCodes    datatypes.JSON `json:"icd_codes,omitempty" gorm:"type:jsonb"`
	DoctorNotes string         `json:"doctor_notes,omitempty" gorm:"type:text"`
	Status      RecordStatus   `json:"status" gorm:"type:varchar(30);not null;default:'completed'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MedicalRecord) TableName() string {
	return "medical_records"
}

// NewMedicalRecord creates a record for a booking
func NewMedicalRecord(bookingID uuid.UUID) *MedicalRecord {
	now := time.Now()
	return &MedicalRecord{
		ID:        uuid.New(),
		BookingID: bookingID,
		Status:    RecordStatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
