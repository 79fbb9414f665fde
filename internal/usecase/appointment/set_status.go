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

// SetAppointmentStatus aplica un cambio de estado directo. El check-in
// lo usa internamente; como endpoint queda restringido a admin.
type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status string,
	operatorID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "cita no encontrada")
		}
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.SetStatus(ap, domain.Status(status), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": status},
	})

	return ap, nil
}
