package appointment

import (
	"time"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel es idempotente: cancelar una cita ya cancelada no cambia nada
// y no es error (contrato documentado en DESIGN.md).
func Cancel(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) == StatusCancelled {
		return nil
	}

	if !CanTransition(Status(ap.Status), StatusCancelled) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la cita no puede cancelarse en su estado actual")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// MarkAttended la usa el check-in al registrar la asistencia.
func MarkAttended(ap *models.Appointment) error {
	if !CanTransition(Status(ap.Status), StatusAttended) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la cita no admite asistencia en su estado actual")
	}

	ap.Status = string(StatusAttended)
	return nil
}

// RevertToPending deshace el efecto del check-in cuando se elimina la
// asistencia de la cita.
func RevertToPending(ap *models.Appointment) error {
	if !CanTransition(Status(ap.Status), StatusPending) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la cita no puede volver a pendiente")
	}

	ap.Status = string(StatusPending)
	return nil
}

// SetStatus aplica un cambio de estado arbitrario (operación
// restringida a administradores en las rutas).
func SetStatus(ap *models.Appointment, target Status, now time.Time) error {
	if !IsValidStatus(target) {
		return httperr.ErrBusinessMsg(httperr.CodeValidationError, "estado desconocido")
	}

	if Status(ap.Status) == target {
		return nil
	}

	if !CanTransition(Status(ap.Status), target) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "transición de estado no permitida")
	}

	ap.Status = string(target)
	if target == StatusCancelled {
		ap.CancelledAt = &now
	}
	return nil
}
