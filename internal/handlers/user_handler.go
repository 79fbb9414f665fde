package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/config"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/httpresp"
	"github.com/turnero-digital/turnero-api/internal/middleware"
	"github.com/turnero-digital/turnero-api/internal/models"
	"github.com/turnero-digital/turnero-api/internal/validators"
)

// Administración de operadores. Las rutas de /users exigen rol admin;
// /me y /me/password operan sobre la cuenta autenticada.
type UserHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, config: cfg}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"last_name": user.LastName,
		"email":     user.Email,
		"role":      user.Role,
		"active":    user.Active,
	}
}

// ======================================================
// LIST / GET (admin)
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	q := h.db.Model(&models.User{})

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	if c.Query("active") != "" {
		q = q.Where("active = ?", c.Query("active") == "true")
	}

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "user_list_failed", "Error al listar operadores.")
		return
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "user_list_failed", "Error al listar operadores.")
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}

	httpresp.Page(c, out, total, page, limit)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Operador no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(&user)})
}

// ======================================================
// UPDATE (admin)
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Operador no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
			return
		}

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "conflict", "Ya existe un operador con ese correo.")
			return
		}

		user.Email = email
	}
	if req.Role != nil {
		if *req.Role != "operator" && *req.Role != "admin" {
			httperr.BadRequest(c, "invalid_role", "Rol desconocido.")
			return
		}
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.db.Save(&user).Error; err != nil {
		log.Error().Err(err).Msg("update user failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(&user)})
}

// ======================================================
// DEACTIVATE (admin; baja lógica, nunca borrado físico)
// ======================================================

// Deactivate es idempotente: desactivar un operador ya inactivo
// responde éxito sin cambios. La cuenta deja de poder iniciar sesión.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Operador no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	if user.Active {
		user.Active = false
		if err := h.db.Save(&user).Error; err != nil {
			log.Error().Err(err).Msg("deactivate user failed")
			httperr.Internal(c, "internal_error", "Error interno.")
			return
		}
	}

	httpresp.OK(c, gin.H{"message": "Operador desactivado.", "user": userJSON(&user)})
}

// ======================================================
// RESET PASSWORD (admin)
// ======================================================

func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "not_found", "Operador no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.config.BcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		log.Error().Err(err).Msg("reset password failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Contraseña restablecida."})
}

// ======================================================
// SELF SERVICE (/me)
// ======================================================

func (h *UserHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "No autenticado.")
		return nil, false
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "No autenticado.")
		return nil, false
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "No autenticado.")
		return nil, false
	}

	return &user, true
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
			return
		}

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "conflict", "Ya existe un operador con ese correo.")
			return
		}

		user.Email = email
	}

	if err := h.db.Save(user).Error; err != nil {
		log.Error().Err(err).Msg("update profile failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(user)})
}

// ChangeMyPassword exige la contraseña vigente antes de aceptar la
// nueva; el restablecimiento sin contraseña previa es solo de admin.
func (h *UserHandler) ChangeMyPassword(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "La contraseña actual no coincide.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.config.BcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(user).Error; err != nil {
		log.Error().Err(err).Msg("change password failed")
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Contraseña actualizada."})
}
