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

// RewardsHandler handles the ledger view, catalog and claim endpoints.
type RewardsHandler struct {
	db *gorm.DB
}

// NewRewardsHandler constructs a RewardsHandler.
func NewRewardsHandler(db *gorm.DB) *RewardsHandler {
	return &RewardsHandler{db: db}
}

// History returns the user's 10 most recent point-earning events.
func (h *RewardsHandler) History(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var entries []models.PointEntry
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Limit(10).
		Find(&entries).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rewards"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Catalog returns active catalog entries ordered by ascending cost.
func (h *RewardsHandler) Catalog(c *gin.Context) {
	var catalog []models.Reward
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("active = ?", true).
		Order("points_required ASC").
		Find(&catalog).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rewards catalog"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// claimRequest defines the request body for a reward claim.
type claimRequest struct {
	RewardID     uint64 `json:"rewardId"`
	ShippingInfo string `json:"shippingInfo"`
}

// Claim redeems a catalog entry for the current user.
func (h *RewardsHandler) Claim(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body claimRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.RewardID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid reward ID required"})
		return
	}

	claim, errClaim := rewards.Claim(c.Request.Context(), h.db, userID, body.RewardID, body.ShippingInfo)
	if errClaim != nil {
		switch {
		case errors.Is(errClaim, rewards.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		case errors.Is(errClaim, rewards.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient points"})
		case errors.Is(errClaim, rewards.ErrOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reward out of stock"})
		default:
			log.WithError(errClaim).Error("reward claim failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim reward"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pointsDeducted": claim.Reward.PointsRequired})
}

// claimRow is one row of the user's claim history.
type claimRow struct {
	models.RewardClaim
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
}

// Claims returns the user's claims joined with their catalog entries.
func (h *RewardsHandler) Claims(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var rows []claimRow
	if errFind := h.db.WithContext(c.Request.Context()).
		Model(&models.RewardClaim{}).
		Select("reward_claims.*, available_rewards.name, available_rewards.description, available_rewards.points_required").
		Joins("JOIN available_rewards ON reward_claims.reward_id = available_rewards.id").
		Where("reward_claims.user_id = ?", userID).
		Order("reward_claims.claimed_at DESC").
		Scan(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load claims"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
