package db

import (
	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/models"
)

// Migrate aplica el esquema completo. Es idempotente y se ejecuta una
// sola vez por despliegue desde cmd/migrate, nunca al arrancar la API.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Appointment{},
		&models.Attendance{},
		&models.TurnCall{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// Guardas de unicidad para los chequeos check-then-act:
	// dos reservas concurrentes del mismo slot, o dos check-ins
	// concurrentes de la misma cita, no pueden insertarse ambas.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_slot
        ON appointments (scheduled_at)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		return err
	}

	// Dos llamados concurrentes sobre la misma asistencia no pueden
	// persistir ambos el mismo ordinal.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_turn_calls_ordinal
        ON turn_calls (attendance_id, ordinal)
    `).Error; err != nil {
		return err
	}

	return nil
}
