package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
)

// RecordRepository handles medical record and comparison record operations
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// CreateMedicalRecord persists a doctor-confirmed medical record
func (r *RecordRepository) CreateMedicalRecord(ctx context.Context, record *entities.MedicalRecord) error {
	if record == nil {
		return errors.New("medical record cannot be nil")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// CreateComparisonRecord persists an AI-vs-doctor comparison snapshot
func (r *RecordRepository) CreateComparisonRecord(ctx context.Context, record *entities.ComparisonRecord) error {
	if record == nil {
		return errors.New("comparison record cannot be nil")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// GetDashboardStats aggregates practice-level counters in a single call
func (r *RecordRepository) GetDashboardStats(ctx context.Context) (*domainrepo.DashboardStats, error) {
	stats := &domainrepo.DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entities.Patient{}).
		Where("role = ?", "patient").
		Count(&stats.TotalPatients).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := db.Model(&entities.Booking{}).
		Where("booking_time >= ?", startOfDay).
		Count(&stats.TodaySessions).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entities.Booking{}).
		Where("booking_time >= ?", startOfDay.AddDate(0, 0, -6)).
		Count(&stats.WeekSessions).Error; err != nil {
		return nil, err
	}

	// AVG returns NULL on an empty table, COALESCE keeps the scan simple
	if err := db.Model(&entities.ComparisonRecord{}).
		Select("COALESCE(AVG(match_score), 0)").
		Scan(&stats.AvgMatchScore).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
