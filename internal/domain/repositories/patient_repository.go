package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// PatientHistoryEntry is a medical record joined with its booking session
type PatientHistoryEntry struct {
	Record        entities.MedicalRecord `json:"record"`
	BookingTime   time.Time              `json:"booking_time"`
	BookingStatus entities.BookingStatus `json:"booking_status"`
}

// PatientRepository defines patient data operations
type PatientRepository interface {
	List(ctx context.Context) ([]entities.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	History(ctx context.Context, patientID uuid.UUID) ([]PatientHistoryEntry, error)
}
