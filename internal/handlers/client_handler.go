package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/httpresp"
	"github.com/turnero-digital/turnero-api/internal/models"
	"github.com/turnero-digital/turnero-api/internal/validators"
)

type ClientHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewClientHandler(db *gorm.DB, loc *time.Location) *ClientHandler {
	return &ClientHandler{db: db, loc: loc}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Document  string `json:"document" binding:"required"`
	Name      string `json:"name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(last_name) LIKE ? OR document LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	if c.Query("active") != "" {
		q = q.Where("active = ?", c.Query("active") == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "client_list_failed", "Error al listar clientes.")
		return
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "client_list_failed", "Error al listar clientes.")
		return
	}

	httpresp.Page(c, clients, total, page, limit)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	document := strings.TrimSpace(req.Document)

	var count int64
	h.db.Model(&models.Client{}).Where("document = ?", document).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "conflict", "Ya existe un cliente con ese documento.")
		return
	}

	client := models.Client{
		Document: document,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    email,
		Phone:    req.Phone,
		Address:  req.Address,
		Active:   true,
	}

	if req.BirthDate != "" {
		if bd, err := parseDateIn(h.loc, req.BirthDate); err == nil {
			client.BirthDate = &bd
		} else {
			httperr.BadRequest(c, "invalid_birth_date", "Fecha de nacimiento inválida.")
			return
		}
	}

	if err := h.db.Create(&client).Error; err != nil {
		log.Error().Err(err).Msg("create client failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
			return
		}
		client.Email = email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	if err := h.db.Save(&client).Error; err != nil {
		log.Error().Err(err).Msg("update client failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DEACTIVATE (baja lógica, nunca borrado físico)
// ======================================================

// Deactivate es idempotente: desactivar un cliente ya inactivo
// responde éxito sin cambios.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	if client.Active {
		client.Active = false
		if err := h.db.Save(&client).Error; err != nil {
			log.Error().Err(err).Msg("deactivate client failed")
			httperr.Internal(c, "internal_error", "Error interno.")
			return
		}
	}

	httpresp.OK(c, gin.H{"message": "Cliente desactivado.", "client": client})
}
