package attendance

import (
	"time"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// Máximo de llamados por asistencia: primero, segundo y tercero.
const MaxCalls = 3

// ===============================
// Domain Actions
// ===============================

// RegisterCall valida el llamado número `ordinal` y aplica sus efectos
// sobre la asistencia. El primer llamado inicia la atención.
func RegisterCall(att *models.Attendance, ordinal int, now time.Time) error {
	if !ValidAction("call", Status(att.Status)) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la asistencia no admite más llamados")
	}

	if ordinal > MaxCalls {
		return httperr.ErrBusinessMsg(httperr.CodeLimitExceeded, "se alcanzó el máximo de llamados para este turno")
	}

	if Status(att.Status) == StatusWaiting {
		att.Status = string(StatusInService)
		att.ServiceStartAt = &now
	}

	return nil
}

// Complete cierra la atención del turno.
func Complete(att *models.Attendance) error {
	if !ValidAction("complete", Status(att.Status)) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la asistencia no está en atención")
	}

	att.Status = string(StatusServed)
	return nil
}

// MarkAbsent registra la ausencia; siempre explícito, nunca automático.
func MarkAbsent(att *models.Attendance) error {
	if !ValidAction("mark_absent", Status(att.Status)) {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "la asistencia ya fue cerrada")
	}

	att.Status = string(StatusAbsent)
	return nil
}
