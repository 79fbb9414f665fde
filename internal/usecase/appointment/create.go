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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID    uint
	ScheduledAt time.Time
	ServiceType string
	Notes       string
	OperatorID  *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	guard *domain.ConflictGuard
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	guard *domain.ConflictGuard,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		guard: guard,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Cliente existente y activo
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "cliente no encontrado")
		}
		return nil, err
	}

	if !client.Active {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "cliente inactivo")
	}

	// --------------------------------------------------
	// Slot libre
	// --------------------------------------------------
	free, err := uc.guard.IsSlotFree(ctx, in.ScheduledAt, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, httperr.ErrBusinessMsg(httperr.CodeConflict, "ya existe una cita para ese horario")
	}

	// --------------------------------------------------
	// Creación (el índice único cubre la carrera)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:    in.ClientID,
		ScheduledAt: uc.guard.Normalize(in.ScheduledAt),
		ServiceType: in.ServiceType,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		OperatorID:  in.OperatorID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OperatorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
