package models

import "time"

// Llamado de turno: nunca se modifica después de creado; solo
// desaparece cuando se elimina la asistencia que lo originó.
type TurnCall struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AttendanceID uint       `gorm:"index;not null" json:"attendance_id"`
	Attendance   Attendance `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"attendance"`

	OperatorID uint `gorm:"not null" json:"operator_id"`
	Operator   User `gorm:"foreignKey:OperatorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"operator"`

	CalledAt time.Time `gorm:"not null" json:"called_at"`

	// 1, 2 o 3: primer, segundo o tercer llamado
	Ordinal int `gorm:"not null" json:"ordinal"`

	// Ventanilla que anuncia el llamado
	Station string `gorm:"size:30" json:"station"`

	CreatedAt time.Time `json:"created_at"`
}
