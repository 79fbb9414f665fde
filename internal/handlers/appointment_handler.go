package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apdomain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	"github.com/turnero-digital/turnero-api/internal/dto"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/httpresp"
	"github.com/turnero-digital/turnero-api/internal/models"
	ucAppointment "github.com/turnero-digital/turnero-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	cancelUC     *ucAppointment.CancelAppointment
	setStatusUC  *ucAppointment.SetAppointmentStatus
	deleteUC     *ucAppointment.DeleteAppointment
	getUC        *ucAppointment.GetAppointment
	listUC       *ucAppointment.ListAppointments

	loc *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	setStatusUC *ucAppointment.SetAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		setStatusUC:  setStatusUC,
		deleteUC:     deleteUC,
		getUC:        getUC,
		listUC:       listUC,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    uint   `json:"client_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Notes       string `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	scheduledAt, err := parseDateTimeIn(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:    req.ClientID,
		ScheduledAt: scheduledAt,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		OperatorID:  operatorID(c),
	})
	if err != nil {
		h.writeError(c, err, "create appointment failed")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get appointment failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := apdomain.ListFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
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

	apps, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, "list appointments failed")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, toAppointmentDTO(ap))
	}

	httpresp.Page(c, out, total, filter.Page, filter.Limit)
}

// ======================================================
// RESCHEDULE / CANCEL / STATUS / DELETE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	newAt, err := parseDateTimeIn(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), id, newAt, operatorID(c))
	if err != nil {
		h.writeError(c, err, "reschedule appointment failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, operatorID(c))
	if err != nil {
		h.writeError(c, err, "cancel appointment failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), id, req.Status, operatorID(c))
	if err != nil {
		h.writeError(c, err, "set appointment status failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, operatorID(c)); err != nil {
		h.writeError(c, err, "delete appointment failed")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cita eliminada."})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) writeError(c *gin.Context, err error, logMsg string) {
	if httperr.FromBusiness(c, err) {
		return
	}
	log.Error().Err(err).Msg(logMsg)
	httperr.Internal(c, "internal_error", "Error interno.")
}

func toAppointmentDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:             ap.ID,
		ScheduledAt:    ap.ScheduledAt,
		ServiceType:    ap.ServiceType,
		Status:         ap.Status,
		Notes:          ap.Notes,
		ClientName:     ap.Client.Name + " " + ap.Client.LastName,
		ClientDocument: ap.Client.Document,
	}
}
