package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	recorddto "github.com/clinicscribe-team/clinic-scribe/internal/adapter/dto/record"
	recorduc "github.com/clinicscribe-team/clinic-scribe/internal/usecase/record"
)

// Record handles medical record endpoints
type Record struct {
	svc    *recorduc.Service
	logger *zap.Logger
}

// NewRecord creates the record handler
func NewRecord(svc *recorduc.Service, logger *zap.Logger) *Record {
	return &Record{svc: svc, logger: logger}
}

// Create persists a doctor-confirmed note and, when an AI snapshot is
// attached, its comparison record
func (h *Record) Create(c echo.Context) error {
	var req recorddto.SaveRecordRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingBookingID())
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrMissingBookingID())
	}

	result, err := h.svc.Save(c.Request().Context(), recorduc.SaveInput{
		BookingID:   bookingID,
		Subjective:  req.Subjective,
		Objective:   req.Objective,
		Assessment:  req.Assessment,
		Plan:        req.Plan,
		Diagnosis:   req.Diagnosis,
		ICDCodes:    req.ICDCodes,
		DoctorNotes: req.DoctorNotes,
		AIDraft:     req.AIResults,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, result)
}
