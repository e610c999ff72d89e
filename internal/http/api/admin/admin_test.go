package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/config"
	dbpkg "github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"github.com/gin-gonic/gin"
)

func newAdminTestRouter(t *testing.T) (*gin.Engine, config.JWTConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, errOpen := dbpkg.Open(":memory:")
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := dbpkg.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}

	jwtCfg := config.JWTConfig{Secret: "admin-route-test-secret", Expiry: time.Hour}
	r := gin.New()
	RegisterAdminRoutes(r, conn, jwtCfg, config.AdminConfig{Password: "super-secret-admin"})
	return r, jwtCfg
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newAdminTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAdminRoutesRejectNonAdminToken(t *testing.T) {
	r, jwtCfg := newAdminTestRouter(t)

	userToken, errSign := security.GenerateToken(jwtCfg.Secret, 1, "greta", time.Hour)
	if errSign != nil {
		t.Fatalf("sign user token: %v", errSign)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user token, got %d", w.Code)
	}
}

func TestAdminRoutesAcceptAdminToken(t *testing.T) {
	r, jwtCfg := newAdminTestRouter(t)

	adminToken, errSign := security.GenerateAdminToken(jwtCfg.Secret, time.Hour)
	if errSign != nil {
		t.Fatalf("sign admin token: %v", errSign)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with admin token, got %d body=%s", w.Code, w.Body.String())
	}
}
