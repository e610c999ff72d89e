package front

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/config"
	dbpkg "github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"github.com/ecotrack-app/ecotrack/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newFrontTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, config.JWTConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, errOpen := dbpkg.Open(":memory:")
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := dbpkg.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate db: %v", errMigrate)
	}

	store, errStore := storage.NewLocalStore(t.TempDir())
	if errStore != nil {
		t.Fatalf("new store: %v", errStore)
	}

	jwtCfg := config.JWTConfig{Secret: "front-route-test-secret", Expiry: time.Hour}
	r := gin.New()
	RegisterFrontRoutes(r, conn, jwtCfg, store, 10<<20)
	return r, conn, jwtCfg
}

func createRouteTestUser(t *testing.T, conn *gorm.DB, suspended bool) models.User {
	t.Helper()
	user := models.User{
		Username:  "route-user",
		Email:     "route@example.com",
		Password:  "irrelevant",
		Level:     1,
		Suspended: suspended,
	}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	return user
}

func TestAuthedRoutesRequireToken(t *testing.T) {
	r, _, _ := newFrontTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestAuthedRoutesLoadUser(t *testing.T) {
	r, conn, jwtCfg := newFrontTestRouter(t)
	user := createRouteTestUser(t, conn, false)

	token, errSign := security.GenerateToken(jwtCfg.Secret, user.ID, user.Username, time.Hour)
	if errSign != nil {
		t.Fatalf("sign token: %v", errSign)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSuspendedUserBlockedMidSession(t *testing.T) {
	r, conn, jwtCfg := newFrontTestRouter(t)
	user := createRouteTestUser(t, conn, false)

	token, errSign := security.GenerateToken(jwtCfg.Secret, user.ID, user.Username, time.Hour)
	if errSign != nil {
		t.Fatalf("sign token: %v", errSign)
	}
	// Suspension after the token was issued still blocks the next request.
	if errUpdate := conn.Model(&user).Update("suspended", true).Error; errUpdate != nil {
		t.Fatalf("suspend user: %v", errUpdate)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for suspended user, got %d", w.Code)
	}
}

func TestLeaderboardIsPublic(t *testing.T) {
	r, conn, _ := newFrontTestRouter(t)
	createRouteTestUser(t, conn, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without token, got %d body=%s", w.Code, w.Body.String())
	}
}
