package record

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
	"github.com/clinicscribe-team/clinic-scribe/internal/usecase/similarity"
)

type stubRecordRepo struct {
	records     []*entities.MedicalRecord
	comparisons []*entities.ComparisonRecord
	createErr   error
}

func (s *stubRecordRepo) CreateMedicalRecord(_ context.Context, record *entities.MedicalRecord) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.records = append(s.records, record)
	return nil
}

func (s *stubRecordRepo) CreateComparisonRecord(_ context.Context, record *entities.ComparisonRecord) error {
	s.comparisons = append(s.comparisons, record)
	return nil
}

func (s *stubRecordRepo) GetDashboardStats(_ context.Context) (*domainrepo.DashboardStats, error) {
	return &domainrepo.DashboardStats{}, nil
}

type stubBookingRepo struct {
	booking       *entities.Booking
	statusUpdates []entities.BookingStatus
}

func (s *stubBookingRepo) Create(_ context.Context, _ *entities.Booking) error { return nil }

func (s *stubBookingRepo) GetByID(_ context.Context, _ uuid.UUID) (*entities.Booking, error) {
	return s.booking, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status entities.BookingStatus) error {
	s.statusUpdates = append(s.statusUpdates, status)
	return nil
}

type constantEmbedder struct {
	err error
}

func (c *constantEmbedder) EmbedContent(_ context.Context, text string) ([]float32, error) {
	if c.err != nil {
		return nil, c.err
	}
	// Same vector for every text, comparison score is exactly 1
	return []float32{0.5, 0.5, 0.5}, nil
}

func testInput(bookingID uuid.UUID) SaveInput {
	return SaveInput{
		BookingID:  bookingID,
		Subjective: "đau đầu hai ngày",
		Assessment: "nghi tăng huyết áp",
		Plan:       "đo huyết áp, tái khám",
		Diagnosis:  "tăng huyết áp",
		ICDCodes:   []string{"I10"},
		AIDraft: &entities.ConsultationDraft{
			Subjective: "đau đầu",
			Plan:       "theo dõi huyết áp",
			Diagnosis:  "tăng huyết áp",
			ICDCodes:   []string{"I10"},
		},
	}
}

func TestSave_WithComparison(t *testing.T) {
	bookingID := uuid.New()
	recordRepo := &stubRecordRepo{}
	bookingRepo := &stubBookingRepo{booking: entities.NewBooking(uuid.New(), nil)}
	scorer := similarity.NewService(&constantEmbedder{}, zap.NewNop())
	svc := NewService(recordRepo, bookingRepo, scorer, zap.NewNop())

	result, err := svc.Save(context.Background(), testInput(bookingID))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if len(recordRepo.records) != 1 {
		t.Fatalf("expected 1 medical record, got %d", len(recordRepo.records))
	}
	if len(recordRepo.comparisons) != 1 {
		t.Fatalf("expected 1 comparison record, got %d", len(recordRepo.comparisons))
	}
	if result.MatchScore == nil {
		t.Fatal("expected a match score")
	}
	if *result.MatchScore < 0.999 {
		t.Fatalf("identical embeddings should score 1, got %f", *result.MatchScore)
	}
	if len(bookingRepo.statusUpdates) != 1 || bookingRepo.statusUpdates[0] != entities.BookingStatusCompleted {
		t.Fatalf("booking not completed: %v", bookingRepo.statusUpdates)
	}
}

func TestSave_EmbeddingFailureStillSavesRecord(t *testing.T) {
	bookingID := uuid.New()
	recordRepo := &stubRecordRepo{}
	bookingRepo := &stubBookingRepo{booking: entities.NewBooking(uuid.New(), nil)}
	scorer := similarity.NewService(&constantEmbedder{err: fmt.Errorf("quota exceeded")}, zap.NewNop())
	svc := NewService(recordRepo, bookingRepo, scorer, zap.NewNop())

	result, err := svc.Save(context.Background(), testInput(bookingID))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if len(recordRepo.records) != 1 {
		t.Fatal("record must still be saved")
	}
	if len(recordRepo.comparisons) != 0 {
		t.Fatal("no comparison should be stored")
	}
	if result.MatchScore != nil {
		t.Fatal("no score expected when embedding failed")
	}
	if len(bookingRepo.statusUpdates) != 1 {
		t.Fatal("booking must still be completed")
	}
}

func TestSave_WithoutAIDraftSkipsComparison(t *testing.T) {
	bookingID := uuid.New()
	recordRepo := &stubRecordRepo{}
	bookingRepo := &stubBookingRepo{booking: entities.NewBooking(uuid.New(), nil)}
	scorer := similarity.NewService(&constantEmbedder{}, zap.NewNop())
	svc := NewService(recordRepo, bookingRepo, scorer, zap.NewNop())

	input := testInput(bookingID)
	input.AIDraft = nil

	result, err := svc.Save(context.Background(), input)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(recordRepo.comparisons) != 0 {
		t.Fatal("no comparison expected without an AI draft")
	}
	if result.MatchScore != nil {
		t.Fatal("no score expected without an AI draft")
	}
}

func TestSave_MissingBookingRejected(t *testing.T) {
	recordRepo := &stubRecordRepo{}
	scorer := similarity.NewService(&constantEmbedder{}, zap.NewNop())

	svc := NewService(recordRepo, &stubBookingRepo{booking: nil}, scorer, zap.NewNop())
	if _, err := svc.Save(context.Background(), testInput(uuid.New())); err == nil {
		t.Fatal("expected error for unknown booking")
	}

	if _, err := svc.Save(context.Background(), SaveInput{}); err == nil {
		t.Fatal("expected error for nil booking id")
	}
	if len(recordRepo.records) != 0 {
		t.Fatal("nothing should have been saved")
	}
}
