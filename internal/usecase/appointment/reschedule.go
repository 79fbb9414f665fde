package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	domain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	guard *domain.ConflictGuard
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	guard *domain.ConflictGuard,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

// Execute mueve la cita a un nuevo horario. Solo cambia el slot; el
// estado queda como estaba.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newScheduledAt time.Time,
	operatorID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "cita no encontrada")
		}
		return nil, err
	}

	free, err := uc.guard.IsSlotFree(ctx, newScheduledAt, ap.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, httperr.ErrBusinessMsg(httperr.CodeConflict, "ya existe una cita para ese horario")
	}

	ap.ScheduledAt = uc.guard.Normalize(newScheduledAt)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
