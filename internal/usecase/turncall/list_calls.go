package turncall

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type ListCalls struct {
	repo domain.Repository
}

func NewListCalls(repo domain.Repository) *ListCalls {
	return &ListCalls{repo: repo}
}

// Execute devuelve los llamados del turno en orden ascendente de
// ordinal.
func (uc *ListCalls) Execute(
	ctx context.Context,
	attendanceID uint,
) ([]models.TurnCall, error) {

	if _, err := uc.repo.GetAttendance(ctx, attendanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return nil, err
	}

	return uc.repo.ListCalls(ctx, attendanceID)
}
