package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/httpresp"
	ucTurncall "github.com/turnero-digital/turnero-api/internal/usecase/turncall"
)

// ======================================================
// HANDLER
// ======================================================

type TurnCallHandler struct {
	callNextUC   *ucTurncall.CallNext
	listCallsUC  *ucTurncall.ListCalls
	completeUC   *ucTurncall.CompleteAttendance
	markAbsentUC *ucTurncall.MarkAbsent
}

func NewTurnCallHandler(
	callNextUC *ucTurncall.CallNext,
	listCallsUC *ucTurncall.ListCalls,
	completeUC *ucTurncall.CompleteAttendance,
	markAbsentUC *ucTurncall.MarkAbsent,
) *TurnCallHandler {
	return &TurnCallHandler{
		callNextUC:   callNextUC,
		listCallsUC:  listCallsUC,
		completeUC:   completeUC,
		markAbsentUC: markAbsentUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CallNextRequest struct {
	Station string `json:"station"`
}

// ======================================================
// CALL NEXT
// ======================================================

func (h *TurnCallHandler) CallNext(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CallNextRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	opID := operatorID(c)
	if opID == nil {
		httperr.Unauthorized(c, "unauthorized", "Operador no identificado.")
		return
	}

	call, err := h.callNextUC.Execute(c.Request.Context(), ucTurncall.CallNextInput{
		AttendanceID: id,
		OperatorID:   *opID,
		Station:      req.Station,
	})
	if err != nil {
		h.writeError(c, err, "call next failed")
		return
	}

	httpresp.Created(c, call)
}

// ======================================================
// LIST CALLS
// ======================================================

func (h *TurnCallHandler) ListCalls(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	calls, err := h.listCallsUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "list calls failed")
		return
	}

	httpresp.OK(c, calls)
}

// ======================================================
// COMPLETE / ABSENT
// ======================================================

func (h *TurnCallHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	att, err := h.completeUC.Execute(c.Request.Context(), id, operatorID(c))
	if err != nil {
		h.writeError(c, err, "complete attendance failed")
		return
	}

	httpresp.OK(c, att)
}

func (h *TurnCallHandler) MarkAbsent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	att, err := h.markAbsentUC.Execute(c.Request.Context(), id, operatorID(c))
	if err != nil {
		h.writeError(c, err, "mark absent failed")
		return
	}

	httpresp.OK(c, att)
}

func (h *TurnCallHandler) writeError(c *gin.Context, err error, logMsg string) {
	if httperr.FromBusiness(c, err) {
		return
	}
	log.Error().Err(err).Msg(logMsg)
	httperr.Internal(c, "internal_error", "Error interno.")
}
