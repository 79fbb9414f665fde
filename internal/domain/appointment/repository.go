package appointment

import (
	"context"
	"time"

	"github.com/turnero-digital/turnero-api/internal/models"
)

type ListFilter struct {
	Date     *time.Time
	Status   string
	ClientID uint

	Page  int
	Limit int
}

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	// -------- Slot (ConflictGuard) --------
	SlotChecker
}
