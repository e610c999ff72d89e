package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecotrack-app/ecotrack/internal/account"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UsersHandler handles admin user management.
type UsersHandler struct {
	db *gorm.DB
}

// NewUsersHandler constructs a UsersHandler.
func NewUsersHandler(db *gorm.DB) *UsersHandler {
	return &UsersHandler{db: db}
}

// parseID extracts a numeric path parameter.
func parseID(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(c.Param("id"), 10, 64)
	if errParse != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// userRow is one row of the admin user listing.
type userRow struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Points    int    `json:"points"`
	Level     int    `json:"level"`
	Suspended bool   `json:"suspended"`
	QuizCount int    `json:"quiz_count"`
}

// List returns all users with their quiz counts, newest first.
func (h *UsersHandler) List(c *gin.Context) {
	var rows []userRow
	if errFind := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select("users.id, users.username, users.email, users.points, users.level, users.suspended, COUNT(quiz_results.id) AS quiz_count").
		Joins("LEFT JOIN quiz_results ON users.id = quiz_results.user_id").
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Detail returns one user with their quiz history and point ledger.
func (h *UsersHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var user models.User
	if errFind := h.db.WithContext(ctx).First(&user, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user details"})
		return
	}

	var quizzes []models.QuizResult
	if errFind := h.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("completed_at DESC").
		Find(&quizzes).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user details"})
		return
	}

	var entries []models.PointEntry
	if errFind := h.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("earned_at DESC").
		Find(&entries).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"quizzes": quizzes,
		"rewards": entries,
	})
}

// Delete removes a user and all dependent rows.
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if errDelete := account.Delete(c.Request.Context(), h.db, id); errDelete != nil {
		if errors.Is(errDelete, account.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.WithError(errDelete).Error("user delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// suspendRequest defines the request body for a suspension toggle.
type suspendRequest struct {
	Suspended bool `json:"suspended"`
}

// Suspend toggles a user's suspended flag.
func (h *UsersHandler) Suspend(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body suspendRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("suspended", body.Suspended)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
