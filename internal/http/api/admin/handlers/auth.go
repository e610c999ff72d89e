package handlers

import (
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/config"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles admin authentication.
type AuthHandler struct {
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{jwtCfg: jwtCfg, adminCfg: adminCfg}
}

// loginRequest defines the request body for admin login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the shared admin secret and issues an admin JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if !security.CheckAdminSecret(h.adminCfg.Password, body.Password) {
		log.Warn("failed admin login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
		return
	}

	token, errToken := security.GenerateAdminToken(h.jwtCfg.Secret, h.jwtCfg.Expiry)
	if errToken != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
