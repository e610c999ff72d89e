package handlers

import (
	"errors"
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/rewards"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ClaimsHandler handles admin review of reward claims.
type ClaimsHandler struct {
	db *gorm.DB
}

// NewClaimsHandler constructs a ClaimsHandler.
func NewClaimsHandler(db *gorm.DB) *ClaimsHandler {
	return &ClaimsHandler{db: db}
}

// adminClaimRow is one row of the admin claim listing.
type adminClaimRow struct {
	models.RewardClaim
	Username       string `json:"username"`
	Email          string `json:"email"`
	RewardName     string `json:"reward_name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
}

// List returns all claims joined with users and catalog entries.
func (h *ClaimsHandler) List(c *gin.Context) {
	var rows []adminClaimRow
	if errFind := h.db.WithContext(c.Request.Context()).
		Model(&models.RewardClaim{}).
		Select("reward_claims.*, users.username, users.email, available_rewards.name AS reward_name, available_rewards.description, available_rewards.points_required").
		Joins("JOIN users ON reward_claims.user_id = users.id").
		Joins("JOIN available_rewards ON reward_claims.reward_id = available_rewards.id").
		Order("reward_claims.claimed_at DESC").
		Scan(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reward claims"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Approve marks a claim approved.
func (h *ClaimsHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if errApprove := rewards.Approve(c.Request.Context(), h.db, id); errApprove != nil {
		if errors.Is(errApprove, rewards.ErrClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve claim"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Ship marks a claim shipped.
func (h *ClaimsHandler) Ship(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if errShip := rewards.Ship(c.Request.Context(), h.db, id); errShip != nil {
		if errors.Is(errShip, rewards.ErrClaimNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark as shipped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject marks a claim rejected and refunds its cost.
func (h *ClaimsHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if errReject := rewards.Reject(c.Request.Context(), h.db, id); errReject != nil {
		log.WithError(errReject).Error("claim rejection failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject claim"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
