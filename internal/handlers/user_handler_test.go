package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/turnero-digital/turnero-api/internal/config"
	"github.com/turnero-digital/turnero-api/internal/middleware"
	"github.com/turnero-digital/turnero-api/internal/models"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn == "" {
		t.Skip("TEST_DB_DSN or DB_DSN is required for integration tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := &models.User{
		Name:         "Prueba",
		LastName:     "Operador",
		Email:        fmt.Sprintf("op-%s@example.com", uuid.NewString()),
		PasswordHash: string(hashed),
		Role:         role,
		Active:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	t.Cleanup(func() {
		db.Unscoped().Delete(&models.User{}, user.ID)
	})

	return user
}

func jsonCtx(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func testUserConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "secreto-de-prueba",
		BcryptCost: bcrypt.MinCost,
	}
}

func TestDeactivateUserBlocksLogin(t *testing.T) {
	db := setupUserTestDB(t)
	cfg := testUserConfig()

	userHandler := NewUserHandler(db, cfg)
	authHandler := NewAuthHandler(db, cfg)

	user := seedUser(t, db, "operator", "clave123")

	c, w := jsonCtx(t, http.MethodDelete, "/api/users/"+strconv.Itoa(int(user.ID)), nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(user.ID))}}
	userHandler.Deactivate(c)

	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d, body %s", w.Code, w.Body.String())
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Active {
		t.Fatal("user still active after deactivate")
	}

	// Repetir la baja no debe fallar
	c2, w2 := jsonCtx(t, http.MethodDelete, "/api/users/"+strconv.Itoa(int(user.ID)), nil)
	c2.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(user.ID))}}
	userHandler.Deactivate(c2)
	if w2.Code != http.StatusOK {
		t.Fatalf("repeated deactivate status = %d", w2.Code)
	}

	// La cuenta desactivada no puede iniciar sesión
	c3, w3 := jsonCtx(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    user.Email,
		"password": "clave123",
	})
	authHandler.Login(c3)
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("login with deactivated account status = %d, want 401", w3.Code)
	}
}

func TestChangeMyPassword(t *testing.T) {
	db := setupUserTestDB(t)
	cfg := testUserConfig()

	userHandler := NewUserHandler(db, cfg)
	user := seedUser(t, db, "operator", "clave-vieja")

	// Contraseña actual equivocada
	c, w := jsonCtx(t, http.MethodPatch, "/api/me/password", gin.H{
		"current_password": "no-es-esta",
		"new_password":     "clave-nueva",
	})
	c.Set(middleware.ContextUserID, user.ID)
	userHandler.ChangeMyPassword(c)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong current password status = %d, want 401", w.Code)
	}

	c2, w2 := jsonCtx(t, http.MethodPatch, "/api/me/password", gin.H{
		"current_password": "clave-vieja",
		"new_password":     "clave-nueva",
	})
	c2.Set(middleware.ContextUserID, user.ID)
	userHandler.ChangeMyPassword(c2)
	if w2.Code != http.StatusOK {
		t.Fatalf("change password status = %d, body %s", w2.Code, w2.Body.String())
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("clave-nueva"),
	); err != nil {
		t.Fatal("stored hash does not match the new password")
	}
}

func TestUpdateUserRole(t *testing.T) {
	db := setupUserTestDB(t)
	cfg := testUserConfig()

	userHandler := NewUserHandler(db, cfg)
	user := seedUser(t, db, "operator", "clave123")

	c, w := jsonCtx(t, http.MethodPatch, "/api/users/"+strconv.Itoa(int(user.ID)), gin.H{
		"role": "admin",
		"name": "Renombrado",
	})
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(user.ID))}}
	userHandler.Update(c)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Role != "admin" || stored.Name != "Renombrado" {
		t.Fatalf("update not persisted: role=%q name=%q", stored.Role, stored.Name)
	}

	// Rol desconocido se rechaza
	c2, w2 := jsonCtx(t, http.MethodPatch, "/api/users/"+strconv.Itoa(int(user.ID)), gin.H{
		"role": "superusuario",
	})
	c2.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(user.ID))}}
	userHandler.Update(c2)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("invalid role status = %d, want 400", w2.Code)
	}
}
