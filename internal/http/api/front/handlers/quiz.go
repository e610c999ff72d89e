package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/ledger"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/quiz"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// QuizHandler handles quiz result submissions.
type QuizHandler struct {
	db *gorm.DB
}

// NewQuizHandler constructs a QuizHandler.
func NewQuizHandler(db *gorm.DB) *QuizHandler {
	return &QuizHandler{db: db}
}

// quizSubmitRequest defines the request body for a completed quiz.
type quizSubmitRequest struct {
	Score           *int     `json:"score"`
	CarbonFootprint *float64 `json:"carbonFootprint"`
	Answers         []int    `json:"answers"`
}

// Submit stores the quiz result and credits completion points, atomically.
func (h *QuizHandler) Submit(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body quizSubmitRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Score == nil || body.CarbonFootprint == nil || body.Answers == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	answersJSON, errMarshal := json.Marshal(body.Answers)
	if errMarshal != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	errTx := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		result := models.QuizResult{
			UserID:          userID,
			Score:           *body.Score,
			CarbonFootprint: *body.CarbonFootprint,
			Answers:         answersJSON,
		}
		if errCreate := tx.Create(&result).Error; errCreate != nil {
			return errCreate
		}
		return ledger.Credit(tx, userID, quiz.CompletionPoints, "Completed carbon footprint quiz")
	})
	if errTx != nil {
		log.WithError(errTx).Error("quiz submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quiz submission failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "points": quiz.CompletionPoints})
}
