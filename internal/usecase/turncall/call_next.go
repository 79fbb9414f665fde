package turncall

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	"github.com/turnero-digital/turnero-api/internal/callboard"
	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CallNextInput struct {
	AttendanceID uint
	OperatorID   uint
	Station      string
}

// ======================================================
// USE CASE
// ======================================================

type CallNext struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	board *callboard.Publisher
	loc   *time.Location
}

func NewCallNext(
	repo domain.Repository,
	audit *audit.Dispatcher,
	board *callboard.Publisher,
	loc *time.Location,
) *CallNext {
	return &CallNext{
		repo:  repo,
		audit: audit,
		board: board,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute registra el siguiente llamado del turno. El ordinal se
// deriva de los llamados existentes, nunca lo aporta el cliente.
func (uc *CallNext) Execute(
	ctx context.Context,
	in CallNextInput,
) (*models.TurnCall, error) {

	att, err := uc.repo.GetAttendance(ctx, in.AttendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "asistencia no encontrada")
		}
		return nil, err
	}

	operator, err := uc.repo.GetOperator(ctx, in.OperatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "operador no encontrado")
		}
		return nil, err
	}

	count, err := uc.repo.CountCalls(ctx, att.ID)
	if err != nil {
		return nil, err
	}
	ordinal := int(count) + 1

	now := time.Now().In(uc.loc)
	if err := domain.RegisterCall(att, ordinal, now); err != nil {
		return nil, err
	}

	call := &models.TurnCall{
		AttendanceID: att.ID,
		OperatorID:   operator.ID,
		CalledAt:     now,
		Ordinal:      ordinal,
		Station:      in.Station,
	}

	if err := uc.repo.CreateCall(ctx, call, att); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operator.ID,
		Action:   "turn_called",
		Entity:   "turn_call",
		EntityID: &call.ID,
		Metadata: map[string]int{"ordinal": ordinal},
	})

	uc.board.Publish(callboard.Announcement{
		AttendanceID: att.ID,
		ClientName:   clientName(att),
		Station:      in.Station,
		Ordinal:      ordinal,
		CalledAt:     now,
	})

	return call, nil
}

func clientName(att *models.Attendance) string {
	c := att.Appointment.Client
	if c.Name == "" {
		return ""
	}
	return c.Name + " " + c.LastName
}
