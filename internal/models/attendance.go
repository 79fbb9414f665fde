package models

import "time"

// Asistencia: registro de llegada del cliente. Una sola por cita,
// reforzado por el índice único sobre appointment_id.
type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"appointment"`

	CheckInAt      time.Time  `gorm:"not null" json:"check_in_at"`
	ServiceStartAt *time.Time `json:"service_start_at"`

	Status string `gorm:"size:20;default:'waiting'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
