package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// BookingRepository handles examination session data operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	if booking == nil {
		return errors.New("booking cannot be nil")
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var booking entities.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus updates the status of a booking
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
