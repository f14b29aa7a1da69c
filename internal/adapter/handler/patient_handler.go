package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/clinicscribe-team/clinic-scribe/errors"
	domainrepo "github.com/clinicscribe-team/clinic-scribe/internal/domain/repositories"
)

// Patient handles patient lookup endpoints
type Patient struct {
	repo   domainrepo.PatientRepository
	logger *zap.Logger
}

// NewPatient creates the patient handler
func NewPatient(repo domainrepo.PatientRepository, logger *zap.Logger) *Patient {
	return &Patient{repo: repo, logger: logger}
}

// List returns all patients ordered by name
func (h *Patient) List(c echo.Context) error {
	patients, err := h.repo.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	return HandleSuccess(h.logger, c, patients)
}

// GetByID returns a single patient
func (h *Patient) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid patient ID"))
	}

	patient, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if patient == nil {
		return HandleError(h.logger, c, apperrors.ErrPatientNotFound(id.String()))
	}

	return HandleSuccess(h.logger, c, patient)
}

// History returns all medical records of a patient, most recent first
func (h *Patient) History(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid patient ID"))
	}

	entries, err := h.repo.History(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, entries)
}
