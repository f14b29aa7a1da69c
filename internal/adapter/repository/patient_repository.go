package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
	"gorm.io/datatypes"
)

// PatientRepository handles patient data operations
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// List retrieves all patients ordered by name
func (r *PatientRepository) List(ctx context.Context) ([]entities.Patient, error) {
	var patients []entities.Patient
	if err := r.db.WithContext(ctx).
		Where("role = ?", "patient").
		Order("name ASC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// GetByID retrieves a patient by ID
func (r *PatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	var patient entities.Patient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// historyRow is the flat scan target for the record/booking join
type historyRow struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Subjective  string
	Objective   string
	Assessment  string
	Plan        string
	Diagnosis   string
	ICDCodes    datatypes.JSON
	DoctorNotes string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	BookingTime   time.Time
	BookingStatus string
}

// History retrieves all medical records of a patient joined with their bookings,
// most recent session first
func (r *PatientRepository) History(ctx context.Context, patientID uuid.UUID) ([]domainrepo.PatientHistoryEntry, error) {
	var rows []historyRow
	if err := r.db.WithContext(ctx).
		Table("medical_records").
		Select("medical_records.*, bookings.booking_time AS booking_time, bookings.status AS booking_status").
		Joins("JOIN bookings ON medical_records.booking_id = bookings.id").
		Where("bookings.user_id = ?", patientID).
		Order("bookings.booking_time DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]domainrepo.PatientHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domainrepo.PatientHistoryEntry{
			Record: entities.MedicalRecord{
				ID:          row.ID,
				BookingID:   row.BookingID,
				Subjective:  row.Subjective,
				Objective:   row.Objective,
				Assessment:  row.Assessment,
				Plan:        row.Plan,
				Diagnosis:   row.Diagnosis,
				ICDCodes:    row.ICDCodes,
				DoctorNotes: row.DoctorNotes,
				Status:      entities.RecordStatus(row.Status),
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			BookingTime:   row.BookingTime,
			BookingStatus: entities.BookingStatus(row.BookingStatus),
		})
	}
	return entries, nil
}
