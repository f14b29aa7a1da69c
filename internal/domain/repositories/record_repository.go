package repositories

import (
	"context"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// DashboardStats aggregates practice-level counters for the dashboard
type DashboardStats struct {
	TotalPatients int64   `json:"total_patients"`
	TodaySessions int64   `json:"today_sessions"`
	WeekSessions  int64   `json:"week_sessions"`
	AvgMatchScore float64 `json:"avg_match_score"`
}

// RecordRepository defines medical record and comparison record operations
type RecordRepository interface {
	CreateMedicalRecord(ctx context.Context, record *entities.MedicalRecord) error
	CreateComparisonRecord(ctx context.Context, record *entities.ComparisonRecord) error
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
