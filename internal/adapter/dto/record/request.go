package record

import (
	"time"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// CreateBookingRequest opens an examination session for a patient
type CreateBookingRequest struct {
	UserID      string     `json:"user_id" validate:"required,uuid"`
	DoctorID    *string    `json:"doctor_id,omitempty" validate:"omitempty,uuid"`
	BookingTime *time.Time `json:"booking_time,omitempty"`
	Symptoms    string     `json:"symptoms,omitempty"`
}

// SaveRecordRequest persists the doctor-confirmed note. AIResults carries the
// AI draft snapshot; when present a comparison record is stored alongside.
type SaveRecordRequest struct {
	BookingID   string                      `json:"booking_id" validate:"required,uuid"`
	Subjective  string                      `json:"subjective,omitempty"`
	Objective   string                      `json:"objective,omitempty"`
	Assessment  string                      `json:"assessment,omitempty"`
	Plan        string                      `json:"plan,omitempty"`
	Diagnosis   string                      `json:"diagnosis,omitempty"`
	ICDCodes    []string                    `json:"icd_codes,omitempty"`
	DoctorNotes string                      `json:"doctor_notes,omitempty"`
	AIResults   *entities.ConsultationDraft `json:"ai_results,omitempty"`
}
