package turncall

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// CompleteAttendance cierra un turno en atención.
type CompleteAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAttendance {
	return &CompleteAttendance{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAttendance) Execute(
	ctx context.Context,
	attendanceID uint,
	operatorID *uint,
) (*models.Attendance, error) {

	att, err := uc.repo.GetAttendance(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return nil, err
	}

	if err := domain.Complete(att); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAttendance(ctx, att); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "attendance_served",
		Entity:   "attendance",
		EntityID: &att.ID,
	})

	return att, nil
}
