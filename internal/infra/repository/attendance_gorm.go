package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (lectura y cambio de estado en transacción)
// --------------------------------------------------

func (r *AttendanceGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Attendance
// --------------------------------------------------

func (r *AttendanceGormRepository) GetAttendance(
	ctx context.Context,
	id uint,
) (*models.Attendance, error) {

	var att models.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		First(&att, id).Error; err != nil {
		return nil, err
	}

	return &att, nil
}

func (r *AttendanceGormRepository) AttendanceForAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Attendance, error) {

	var att models.Attendance
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&att).Error; err != nil {
		return nil, err
	}

	return &att, nil
}

func (r *AttendanceGormRepository) CreateAttendance(
	ctx context.Context,
	att *models.Attendance,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(att).Error; err != nil {
			return err
		}
		return tx.Save(ap).Error
	})

	return translatePG(err, "la cita ya tiene asistencia registrada")
}

func (r *AttendanceGormRepository) UpdateAttendance(
	ctx context.Context,
	att *models.Attendance,
) error {
	return r.db.WithContext(ctx).Save(att).Error
}

// RemoveAttendance borra llamados y asistencia, y revierte la cita.
// Una sola transacción: o se aplica todo o nada.
func (r *AttendanceGormRepository) RemoveAttendance(
	ctx context.Context,
	att *models.Attendance,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_id = ?", att.ID).
			Delete(&models.TurnCall{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(att).Error; err != nil {
			return err
		}

		return tx.Save(ap).Error
	})
}

func (r *AttendanceGormRepository) ListAttendances(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Attendance, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Attendance{})

	if filter.Date != nil {
		dayStart := *filter.Date
		q = q.Where(
			"check_in_at >= ? AND check_in_at < ?",
			dayStart, dayStart.Add(24*time.Hour),
		)
	}

	if filter.ClientID != 0 {
		q = q.
			Joins("JOIN appointments ON appointments.id = attendances.appointment_id").
			Where("appointments.client_id = ?", filter.ClientID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var atts []models.Attendance
	if err := q.
		Preload("Appointment").
		Preload("Appointment.Client").
		Order("check_in_at ASC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&atts).Error; err != nil {
		return nil, 0, err
	}

	return atts, total, nil
}

// --------------------------------------------------
// Turn calls
// --------------------------------------------------

func (r *AttendanceGormRepository) GetOperator(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *AttendanceGormRepository) CountCalls(
	ctx context.Context,
	attendanceID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TurnCall{}).
		Where("attendance_id = ?", attendanceID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *AttendanceGormRepository) CreateCall(
	ctx context.Context,
	call *models.TurnCall,
	att *models.Attendance,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(call).Error; err != nil {
			return err
		}
		return tx.Save(att).Error
	})
	return translatePG(err, "el turno ya registró ese llamado")
}

func (r *AttendanceGormRepository) ListCalls(
	ctx context.Context,
	attendanceID uint,
) ([]models.TurnCall, error) {

	var calls []models.TurnCall
	if err := r.db.WithContext(ctx).
		Preload("Operator").
		Where("attendance_id = ?", attendanceID).
		Order("ordinal ASC").
		Find(&calls).Error; err != nil {
		return nil, err
	}

	return calls, nil
}

// Compile-time check
var _ domain.Repository = (*AttendanceGormRepository)(nil)
