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

// MarkAbsent registra la ausencia del cliente. Es una decisión del
// operador: agotar los tres llamados no la dispara sola.
type MarkAbsent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkAbsent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkAbsent {
	return &MarkAbsent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkAbsent) Execute(
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

	if err := domain.MarkAbsent(att); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAttendance(ctx, att); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operatorID,
		Action:   "attendance_absent",
		Entity:   "attendance",
		EntityID: &att.ID,
	})

	return att, nil
}
