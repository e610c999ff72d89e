package handlers

import (
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/ledger"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/quiz"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CalculatorHandler handles detailed carbon-footprint calculations.
type CalculatorHandler struct {
	db *gorm.DB
}

// NewCalculatorHandler constructs a CalculatorHandler.
func NewCalculatorHandler(db *gorm.DB) *CalculatorHandler {
	return &CalculatorHandler{db: db}
}

// calculatorSubmitRequest defines the request body for a calculation.
type calculatorSubmitRequest struct {
	CarbonFootprint *float64 `json:"carbonFootprint"`
	Breakdown       *struct {
		Transport float64 `json:"transport"`
		Energy    float64 `json:"energy"`
		Food      float64 `json:"food"`
		Lifestyle float64 `json:"lifestyle"`
	} `json:"breakdown"`
}

// Submit stores the calculation and credits completion points, atomically.
func (h *CalculatorHandler) Submit(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body calculatorSubmitRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.CarbonFootprint == nil || body.Breakdown == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	errTx := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		calc := models.CarbonCalculation{
			UserID:             userID,
			TotalFootprint:     *body.CarbonFootprint,
			TransportEmissions: body.Breakdown.Transport,
			EnergyEmissions:    body.Breakdown.Energy,
			FoodEmissions:      body.Breakdown.Food,
			LifestyleEmissions: body.Breakdown.Lifestyle,
		}
		if errCreate := tx.Create(&calc).Error; errCreate != nil {
			return errCreate
		}
		return ledger.Credit(tx, userID, quiz.CompletionPoints, "Completed carbon footprint calculation")
	})
	if errTx != nil {
		log.WithError(errTx).Error("calculation submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "points": quiz.CompletionPoints})
}
