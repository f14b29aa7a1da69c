package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	recorddto "github.com/clinicscribe-team/clinic-scribe/internal/adapter/dto/record"
	"github.com/clinicscribe-team/clinic-scribe/internal/domain/entities"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
)

// Booking handles examination session endpoints
type Booking struct {
	bookingRepo domainrepo.BookingRepository
	patientRepo domainrepo.PatientRepository
	logger      *zap.Logger
}

// NewBooking creates the booking handler
func NewBooking(bookingRepo domainrepo.BookingRepository, patientRepo domainrepo.PatientRepository, logger *zap.Logger) *Booking {
	return &Booking{
		bookingRepo: bookingRepo,
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// Create opens an examination session for a patient
func (h *Booking) Create(c echo.Context) error {
	var req recorddto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid user_id"))
	}

	ctx := c.Request().Context()

	patient, err := h.patientRepo.GetByID(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if patient == nil {
		return HandleError(h.logger, c, apperrors.ErrPatientNotFound(userID.String()))
	}

	var doctorID *uuid.UUID
	if req.DoctorID != nil {
		id, err := uuid.Parse(*req.DoctorID)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid doctor_id"))
		}
		doctorID = &id
	}

	booking := entities.NewBooking(userID, doctorID)
	booking.Symptoms = req.Symptoms
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
	}

	if err := h.bookingRepo.Create(ctx, booking); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, booking)
}
