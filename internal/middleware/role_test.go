package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRoleRouter(grant string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/admin-only",
		func(c *gin.Context) {
			c.Set(ContextUserRole, grant)
		},
		RequireRole("admin"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)

	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role   string
		status int
	}{
		{"admin", http.StatusOK},
		{"operator", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)

		newRoleRouter(tt.role).ServeHTTP(w, req)

		if w.Code != tt.status {
			t.Fatalf("role %q: status=%d, want %d", tt.role, w.Code, tt.status)
		}
	}
}
