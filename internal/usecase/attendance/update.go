package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type UpdateAttendanceInput struct {
	AttendanceID   uint
	Notes          *string
	ServiceStartAt *time.Time
}

// UpdateAttendance modifica solo notas y hora de inicio de atención.
// El estado es dueño exclusivo del despachador de llamados.
type UpdateAttendance struct {
	repo domain.Repository
}

func NewUpdateAttendance(repo domain.Repository) *UpdateAttendance {
	return &UpdateAttendance{repo: repo}
}

func (uc *UpdateAttendance) Execute(
	ctx context.Context,
	in UpdateAttendanceInput,
) (*models.Attendance, error) {

	att, err := uc.repo.GetAttendance(ctx, in.AttendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return nil, err
	}

	if in.Notes != nil {
		att.Notes = *in.Notes
	}
	if in.ServiceStartAt != nil {
		att.ServiceStartAt = in.ServiceStartAt
	}

	if err := uc.repo.UpdateAttendance(ctx, att); err != nil {
		return nil, err
	}

	return att, nil
}
