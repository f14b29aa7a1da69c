package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
)

// BookingRepository defines examination session data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
}
