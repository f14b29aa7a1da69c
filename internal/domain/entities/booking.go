package entities

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle of an examination session
type BookingStatus string

const (
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking is one examination session linking a patient to a consultation
type Booking struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	DoctorID    *uuid.UUID    `json:"doctor_id,omitempty" gorm:"type:uuid;index"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(30);not null;index;default:'in_progress'"`
	BookingTime time.Time     `json:"booking_time" gorm:"not null"`
	Symptoms    string        `json:"symptoms,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking opens a new examination session for a patient
func NewBooking(userID uuid.UUID, doctorID *uuid.UUID) *Booking {
	now := time.Now()
	return &Booking{
		ID:          uuid.New(),
		UserID:      userID,
		DoctorID:    doctorID,
		Status:      BookingStatusInProgress,
		BookingTime: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
