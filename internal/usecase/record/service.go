package record

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
	"github.com/clinicscribe-team/clinic-scribe/internal/usecase/similarity"
)

// SaveInput is the doctor-confirmed note to persist, with an optional AI
// draft snapshot for comparison
type SaveInput struct {
	BookingID   uuid.UUID
	Subjective  string
	Objective   string
	Assessment  string
	Plan        string
	Diagnosis   string
	ICDCodes    []string
	DoctorNotes string
	AIDraft     *entities.ConsultationDraft
}

// SaveResult reports what was persisted
type SaveResult struct {
	MedicalRecordID uuid.UUID `json:"medical_record_id"`
	MatchScore      *float64  `json:"match_score,omitempty"`
}

// Service persists confirmed medical records and their AI comparison snapshots
type Service struct {
	recordRepo  domainrepo.RecordRepository
	bookingRepo domainrepo.BookingRepository
	scorer      *similarity.Service
	logger      *zap.Logger
}

// NewService constructs the record service
func NewService(
	recordRepo domainrepo.RecordRepository,
	bookingRepo domainrepo.BookingRepository,
	scorer *similarity.Service,
	logger *zap.Logger,
) *Service {
	return &Service{
		recordRepo:  recordRepo,
		bookingRepo: bookingRepo,
		scorer:      scorer,
		logger:      logger,
	}
}

// Save persists the medical record, scores it against the AI draft when one
// is supplied and marks the booking completed. A failed comparison never
// blocks the record itself.
func (s *Service) Save(ctx context.Context, input SaveInput) (*SaveResult, error) {
	if input.BookingID == uuid.Nil {
		return nil, apperrors.ErrMissingBookingID()
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if booking == nil {
		return nil, apperrors.ErrBookingNotFound(input.BookingID.String())
	}

	record := entities.NewMedicalRecord(input.BookingID)
	record.Subjective = input.Subjective
	record.Objective = input.Objective
	record.Assessment = input.Assessment
	record.Plan = input.Plan
	record.Diagnosis = input.Diagnosis
	record.DoctorNotes = input.DoctorNotes

	if codes, err := json.Marshal(input.ICDCodes); err == nil {
		record.ICDCodes = datatypes.JSON(codes)
	}

	if err := s.recordRepo.CreateMedicalRecord(ctx, record); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	result := &SaveResult{MedicalRecordID: record.ID}

	if input.AIDraft != nil {
		if score := s.saveComparison(ctx, record, input); score != nil {
			result.MatchScore = score
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, input.BookingID, entities.BookingStatusCompleted); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("💾 Medical record saved",
			zap.String("record_id", record.ID.String()),
			zap.String("booking_id", input.BookingID.String()),
		)
	}

	return result, nil
}

// saveComparison scores the AI draft against the doctor's final text and
// stores the comparison snapshot. Returns nil when comparison was skipped.
func (s *Service) saveComparison(ctx context.Context, record *entities.MedicalRecord, input SaveInput) *float64 {
	aiText := draftText(input.AIDraft)
	doctorText := noteText(input)

	cmp, err := s.scorer.Compare(ctx, aiText, doctorText)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("comparison skipped, record saved without score",
				zap.String("record_id", record.ID.String()),
				zap.Error(err),
			)
		}
		return nil
	}

	aiResults, _ := json.Marshal(input.AIDraft)
	doctorResults, _ := json.Marshal(map[string]any{
		"subjective": input.Subjective,
		"objective":  input.Objective,
		"assessment": input.Assessment,
		"plan":       input.Plan,
		"diagnosis":  input.Diagnosis,
	})

	comparison := &entities.ComparisonRecord{
		ID:              uuid.New(),
		MedicalRecordID: record.ID,
		AIResults:       datatypes.JSON(aiResults),
		DoctorResults:   datatypes.JSON(doctorResults),
		MatchScore:      cmp.Score,
		AIEmbedding:     pgvector.NewVector(cmp.AIEmbedding),
		DoctorEmbedding: pgvector.NewVector(cmp.DoctorEmbedding),
	}

	if err := s.recordRepo.CreateComparisonRecord(ctx, comparison); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to store comparison record",
				zap.String("record_id", record.ID.String()),
				zap.Error(err),
			)
		}
		return nil
	}

	return &cmp.Score
}

// draftText concatenates the AI draft's SOAP sections and diagnosis for
// embedding
func draftText(d *entities.ConsultationDraft) string {
	return strings.Join([]string{
		d.Subjective, d.Objective, d.Assessment, d.Plan, d.Diagnosis,
	}, "\n")
}

// noteText concatenates the doctor's final sections the same way
func noteText(input SaveInput) string {
	return strings.Join([]string{
		input.Subjective, input.Objective, input.Assessment, input.Plan, input.Diagnosis,
	}, "\n")
}
