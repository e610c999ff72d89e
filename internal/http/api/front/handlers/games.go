package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/games"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GamesHandler handles weekly mini-game completions.
type GamesHandler struct {
	db *gorm.DB
}

// NewGamesHandler constructs a GamesHandler.
func NewGamesHandler(db *gorm.DB) *GamesHandler {
	return &GamesHandler{db: db}
}

// completeRequest defines the request body for a game completion.
type completeRequest struct {
	GameType string `json:"gameType"`
}

// Complete records a weekly game completion and credits its points.
func (h *GamesHandler) Complete(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body completeRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	gameType := strings.TrimSpace(body.GameType)
	if gameType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameType is required"})
		return
	}

	errComplete := games.Complete(c.Request.Context(), h.db, userID, gameType, time.Now())
	if errComplete != nil {
		switch {
		case errors.Is(errComplete, games.ErrInvalidGameType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game type"})
		case errors.Is(errComplete, games.ErrAlreadyPlayed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already played this week"})
		default:
			log.WithError(errComplete).Error("game completion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete game"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "points": games.CompletionPoints})
}
