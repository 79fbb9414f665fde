package attendance

import (
	"context"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type ListAttendances struct {
	repo domain.Repository
}

func NewListAttendances(repo domain.Repository) *ListAttendances {
	return &ListAttendances{repo: repo}
}

func (uc *ListAttendances) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Attendance, int64, error) {

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}

	return uc.repo.ListAttendances(ctx, filter)
}
