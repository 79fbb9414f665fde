package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	attdomain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/dto"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/httpresp"
	"github.com/turnero-digital/turnero-api/internal/models"
	ucAttendance "github.com/turnero-digital/turnero-api/internal/usecase/attendance"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	checkInUC *ucAttendance.CheckIn
	updateUC  *ucAttendance.UpdateAttendance
	removeUC  *ucAttendance.RemoveAttendance
	getUC     *ucAttendance.GetAttendance
	listUC    *ucAttendance.ListAttendances

	loc *time.Location
}

func NewAttendanceHandler(
	checkInUC *ucAttendance.CheckIn,
	updateUC *ucAttendance.UpdateAttendance,
	removeUC *ucAttendance.RemoveAttendance,
	getUC *ucAttendance.GetAttendance,
	listUC *ucAttendance.ListAttendances,
	loc *time.Location,
) *AttendanceHandler {
	return &AttendanceHandler{
		checkInUC: checkInUC,
		updateUC:  updateUC,
		removeUC:  removeUC,
		getUC:     getUC,
		listUC:    listUC,
		loc:       loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckInRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Notes         string `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Notes          *string `json:"notes"`
	ServiceStartAt *string `json:"service_start_at"` // "2006-01-02 15:04"
}

// ======================================================
// CHECK-IN
// ======================================================

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	att, err := h.checkInUC.Execute(c.Request.Context(), ucAttendance.CheckInInput{
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
		OperatorID:    operatorID(c),
	})
	if err != nil {
		h.writeError(c, err, "check-in failed")
		return
	}

	httpresp.Created(c, att)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	att, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get attendance failed")
		return
	}

	httpresp.OK(c, att)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := attdomain.ListFilter{
		Page:  page,
		Limit: limit,
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDateIn(h.loc, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		filter.Date = &date
	}

	if clientID, ok := queryID(c, "client_id"); ok {
		filter.ClientID = clientID
	}

	atts, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, "list attendances failed")
		return
	}

	out := make([]dto.AttendanceListDTO, 0, len(atts))
	for _, att := range atts {
		out = append(out, toAttendanceDTO(att))
	}

	httpresp.Page(c, out, total, filter.Page, filter.Limit)
}

// ======================================================
// UPDATE (solo notas y hora de atención)
// ======================================================

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucAttendance.UpdateAttendanceInput{
		AttendanceID: id,
		Notes:        req.Notes,
	}

	if req.ServiceStartAt != nil {
		t, err := time.ParseInLocation("2006-01-02 15:04", *req.ServiceStartAt, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_start", "Hora de atención inválida.")
			return
		}
		in.ServiceStartAt = &t
	}

	att, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "update attendance failed")
		return
	}

	httpresp.OK(c, att)
}

// ======================================================
// REMOVE (revierte la cita a pendiente)
// ======================================================

func (h *AttendanceHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), id, operatorID(c)); err != nil {
		h.writeError(c, err, "remove attendance failed")
		return
	}

	httpresp.OK(c, gin.H{"message": "Asistencia eliminada."})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AttendanceHandler) writeError(c *gin.Context, err error, logMsg string) {
	if httperr.FromBusiness(c, err) {
		return
	}
	log.Error().Err(err).Msg(logMsg)
	httperr.Internal(c, "internal_error", "Error interno.")
}

func toAttendanceDTO(att models.Attendance) dto.AttendanceListDTO {
	return dto.AttendanceListDTO{
		ID:             att.ID,
		AppointmentID:  att.AppointmentID,
		CheckInAt:      att.CheckInAt,
		ServiceStartAt: att.ServiceStartAt,
		Status:         att.Status,
		ClientName:     att.Appointment.Client.Name + " " + att.Appointment.Client.LastName,
		ClientDocument: att.Appointment.Client.Document,
	}
}
