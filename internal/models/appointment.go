package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	// Slot ocupado por la cita, normalizado al minuto en la zona horaria
	// de la oficina. El índice parcial uniq_appointments_slot (ver
	// db.Migrate) garantiza un solo slot activo por horario.
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`

	ServiceType string `gorm:"size:50;not null" json:"service_type"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	OperatorID *uint `json:"operator_id"`
	Operator   *User `gorm:"foreignKey:OperatorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"operator,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
