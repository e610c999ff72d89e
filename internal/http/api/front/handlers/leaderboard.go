package handlers

import (
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LeaderboardHandler handles the public leaderboard.
type LeaderboardHandler struct {
	db *gorm.DB
}

// NewLeaderboardHandler constructs a LeaderboardHandler.
func NewLeaderboardHandler(db *gorm.DB) *LeaderboardHandler {
	return &LeaderboardHandler{db: db}
}

// leaderboardRow is one public leaderboard entry.
type leaderboardRow struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

// List returns the top ten non-suspended users by points.
func (h *LeaderboardHandler) List(c *gin.Context) {
	var rows []leaderboardRow
	if errFind := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select("username, points, level").
		Where("suspended = ?", false).
		Order("points DESC").
		Limit(10).
		Scan(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
