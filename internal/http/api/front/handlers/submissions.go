package handlers

import (
	"net/http"
	"strings"

	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/storage"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SubmissionsHandler handles evidence uploads.
type SubmissionsHandler struct {
	db      *gorm.DB
	store   storage.ObjectStore
	maxSize int64
}

// NewSubmissionsHandler constructs a SubmissionsHandler.
func NewSubmissionsHandler(db *gorm.DB, store storage.ObjectStore, maxSize int64) *SubmissionsHandler {
	return &SubmissionsHandler{db: db, store: store, maxSize: maxSize}
}

// Create stores the uploaded file and records a pending submission.
func (h *SubmissionsHandler) Create(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	fileHeader, errFile := c.FormFile("file")
	if errFile != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File required"})
		return
	}
	description := strings.TrimSpace(c.PostForm("description"))
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description required"})
		return
	}

	file, errOpen := fileHeader.Open()
	if errOpen != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}
	defer file.Close()

	key := storage.ObjectKey(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if errPut := h.store.Put(c.Request.Context(), key, contentType, file); errPut != nil {
		log.WithError(errPut).Error("store upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}

	submission := models.Submission{
		UserID:      userID,
		Filename:    key,
		Description: description,
		Status:      models.SubmissionStatusPending,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&submission).Error; errCreate != nil {
		// Keep storage consistent with the database when the insert fails.
		_ = h.store.Delete(c.Request.Context(), key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": submission.ID})
}
