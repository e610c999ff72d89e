package handlers

import (
	"net/http"
	"strings"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler handles admin management of the reward catalog.
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// List returns the full catalog including inactive entries.
func (h *CatalogHandler) List(c *gin.Context) {
	var catalog []models.Reward
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("points_required ASC").
		Find(&catalog).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rewards catalog"})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// catalogRequest defines the request body for catalog creation.
type catalogRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	Category       string `json:"category"`
	Type           string `json:"type"`
	Stock          *int   `json:"stock"`
}

// Create adds a catalog entry.
func (h *CatalogHandler) Create(c *gin.Context) {
	var body catalogRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := strings.TrimSpace(body.Name)
	category := strings.TrimSpace(body.Category)
	if name == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}
	if body.PointsRequired <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points_required must be positive"})
		return
	}
	rewardType := body.Type
	if rewardType == "" {
		rewardType = models.RewardTypePhysical
	}
	if rewardType != models.RewardTypePhysical && rewardType != models.RewardTypeDigital {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be physical or digital"})
		return
	}
	stock := models.UnlimitedStock
	if body.Stock != nil {
		stock = *body.Stock
	}

	reward := models.Reward{
		Name:           name,
		Description:    strings.TrimSpace(body.Description),
		PointsRequired: body.PointsRequired,
		Category:       category,
		Type:           rewardType,
		Stock:          stock,
		Active:         true,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&reward).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reward"})
		return
	}
	c.JSON(http.StatusOK, reward)
}

// catalogUpdateRequest defines the request body for a catalog update. Fields
// referenced by claims stay immutable; only availability knobs move.
type catalogUpdateRequest struct {
	Stock  *int  `json:"stock"`
	Active *bool `json:"active"`
}

// Update toggles stock and active on a catalog entry.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body catalogUpdateRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	updates := map[string]any{}
	if body.Stock != nil {
		updates["stock"] = *body.Stock
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Reward{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reward"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
