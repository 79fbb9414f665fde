package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type GetAttendance struct {
	repo domain.Repository
}

func NewGetAttendance(repo domain.Repository) *GetAttendance {
	return &GetAttendance{repo: repo}
}

func (uc *GetAttendance) Execute(
	ctx context.Context,
	attendanceID uint,
) (*models.Attendance, error) {

	att, err := uc.repo.GetAttendance(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return nil, err
	}

	return att, nil
}
