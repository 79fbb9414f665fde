package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	apdomain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
)

// RemoveAttendance elimina la asistencia con sus llamados y devuelve
// la cita a pendiente. Ambos efectos ocurren en la misma transacción:
// o se aplican los dos o ninguno.
type RemoveAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveAttendance {
	return &RemoveAttendance{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveAttendance) Execute(
	ctx context.Context,
	attendanceID uint,
	operatorID *uint,
) error {

	att, err := uc.repo.GetAttendance(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return err
	}

	ap, err := uc.repo.GetAppointment(ctx, att.AppointmentID)
	if err != nil {
		return err
	}

	if err := apdomain.RevertToPending(ap); err != nil {
		return err
	}

	if err := uc.repo.RemoveAttendance(ctx, att, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "attendance_removed",
		Entity:   "attendance",
		EntityID: &att.ID,
	})

	return nil
}
