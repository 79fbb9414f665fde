package attendance

import (
	"context"
	"time"

	"github.com/turnero-digital/turnero-api/internal/models"
)

type ListFilter struct {
	Date     *time.Time
	ClientID uint

	Page  int
	Limit int
}

type Repository interface {
	// -------- Appointment (read / status hand-off) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Attendance --------
	GetAttendance(
		ctx context.Context,
		id uint,
	) (*models.Attendance, error)

	AttendanceForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Attendance, error)

	// CreateAttendance inserta la asistencia y persiste el nuevo estado
	// de la cita en una sola transacción.
	CreateAttendance(
		ctx context.Context,
		att *models.Attendance,
		ap *models.Appointment,
	) error

	UpdateAttendance(
		ctx context.Context,
		att *models.Attendance,
	) error

	// RemoveAttendance borra la asistencia con sus llamados y revierte
	// la cita, todo o nada.
	RemoveAttendance(
		ctx context.Context,
		att *models.Attendance,
		ap *models.Appointment,
	) error

	ListAttendances(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Attendance, int64, error)

	// -------- Turn calls --------
	GetOperator(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	CountCalls(
		ctx context.Context,
		attendanceID uint,
	) (int64, error)

	// CreateCall inserta el llamado y persiste el estado de la
	// asistencia en una sola transacción.
	CreateCall(
		ctx context.Context,
		call *models.TurnCall,
		att *models.Attendance,
	) error

	ListCalls(
		ctx context.Context,
		attendanceID uint,
	) ([]models.TurnCall, error)
}
