package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/ledger"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmissionsHandler handles admin review of evidence submissions.
type SubmissionsHandler struct {
	db *gorm.DB
}

// NewSubmissionsHandler constructs a SubmissionsHandler.
func NewSubmissionsHandler(db *gorm.DB) *SubmissionsHandler {
	return &SubmissionsHandler{db: db}
}

// submissionRow is one row of the admin submission listing.
type submissionRow struct {
	models.Submission
	Username string `json:"username"`
}

// List returns all submissions with their submitter names, newest first.
func (h *SubmissionsHandler) List(c *gin.Context) {
	var rows []submissionRow
	if errFind := h.db.WithContext(c.Request.Context()).
		Model(&models.Submission{}).
		Select("submissions.*, users.username").
		Joins("JOIN users ON submissions.user_id = users.id").
		Order("submissions.submitted_at DESC").
		Scan(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// approveRequest defines the request body for a submission approval.
type approveRequest struct {
	Points int `json:"points"`
}

// Approve marks a submission approved and credits the awarded points in one
// transaction.
func (h *SubmissionsHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body approveRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be positive"})
		return
	}

	errTx := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if errFind := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&submission, id).Error; errFind != nil {
			return errFind
		}

		if errUpdate := tx.Model(&submission).Updates(map[string]any{
			"status":      models.SubmissionStatusApproved,
			"points":      body.Points,
			"reviewed_at": time.Now().UTC(),
		}).Error; errUpdate != nil {
			return errUpdate
		}

		return ledger.Credit(tx, submission.UserID, body.Points, "Evidence submission approved")
	})
	if errTx != nil {
		if errors.Is(errTx, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		log.WithError(errTx).Error("submission approval failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reject marks a submission rejected. No point effect.
func (h *SubmissionsHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      models.SubmissionStatusRejected,
			"reviewed_at": time.Now().UTC(),
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject submission"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
