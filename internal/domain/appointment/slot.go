package appointment

import (
	"context"
	"time"
)

// ===============================
// Slot / ConflictGuard
// ===============================

// Granularity define la clave de agenda: por minuto (fecha y hora) o
// por día (una cita activa por fecha).
type Granularity string

const (
	GranularityMinute Granularity = "minute"
	GranularityDay    Granularity = "day"
)

func ParseGranularity(s string) Granularity {
	if Granularity(s) == GranularityDay {
		return GranularityDay
	}
	return GranularityMinute
}

// NormalizeSlot proyecta un horario a su clave de agenda en la zona
// horaria de la oficina.
func NormalizeSlot(t time.Time, g Granularity, loc *time.Location) time.Time {
	t = t.In(loc)

	if g == GranularityDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// SlotChecker es la porción del repositorio que necesita el guard.
type SlotChecker interface {
	IsSlotTaken(ctx context.Context, slot time.Time, excludeID uint) (bool, error)
}

// ConflictGuard decide si un slot propuesto está libre. No tiene
// efectos secundarios; la carrera entre chequeo e inserción la cierra
// el índice único parcial sobre appointments.scheduled_at.
type ConflictGuard struct {
	repo        SlotChecker
	granularity Granularity
	loc         *time.Location
}

func NewConflictGuard(repo SlotChecker, granularity Granularity, loc *time.Location) *ConflictGuard {
	return &ConflictGuard{
		repo:        repo,
		granularity: granularity,
		loc:         loc,
	}
}

// IsSlotFree devuelve false si ya existe una cita no cancelada en el
// mismo slot. excludeID descarta la propia cita en reprogramaciones.
func (g *ConflictGuard) IsSlotFree(ctx context.Context, scheduledAt time.Time, excludeID uint) (bool, error) {
	slot := g.Normalize(scheduledAt)

	taken, err := g.repo.IsSlotTaken(ctx, slot, excludeID)
	if err != nil {
		return false, err
	}

	return !taken, nil
}

func (g *ConflictGuard) Normalize(t time.Time) time.Time {
	return NormalizeSlot(t, g.granularity, g.loc)
}
