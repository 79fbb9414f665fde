package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	apdomain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CheckInInput struct {
	AppointmentID uint
	Notes         string
	OperatorID    *uint
}

// ======================================================
// USE CASE
// ======================================================

type CheckIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCheckIn(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CheckIn {
	return &CheckIn{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CheckIn) Execute(
	ctx context.Context,
	in CheckInInput,
) (*models.Attendance, error) {

	// --------------------------------------------------
	// Cita existente
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "cita no encontrada")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Una sola asistencia por cita
	// --------------------------------------------------
	_, err = uc.repo.AttendanceForAppointment(ctx, in.AppointmentID)
	if err == nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeConflict, "la cita ya tiene asistencia registrada")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// La cita pasa a atendida
	// --------------------------------------------------
	if err := apdomain.MarkAttended(ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Alta atómica (índice único cubre la carrera)
	// --------------------------------------------------
	att := &models.Attendance{
		AppointmentID: ap.ID,
		CheckInAt:     time.Now().In(uc.loc),
		Status:        string(domain.StatusWaiting),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateAttendance(ctx, att, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OperatorID,
		Action:   "attendance_checked_in",
		Entity:   "attendance",
		EntityID: &att.ID,
	})

	return att, nil
}
