package handlers

import (
	"net/http"
	"strconv"

	"github.com/ecotrack-app/ecotrack/internal/impact"
	"github.com/gin-gonic/gin"
)

// ImpactHandler handles global impact projections.
type ImpactHandler struct{}

// NewImpactHandler constructs an ImpactHandler.
func NewImpactHandler() *ImpactHandler {
	return &ImpactHandler{}
}

// Get projects the given footprint onto global scale.
func (h *ImpactHandler) Get(c *gin.Context) {
	footprint, errParse := strconv.ParseFloat(c.Query("footprint"), 64)
	if errParse != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "footprint query parameter required"})
		return
	}

	report, errProject := impact.Project(footprint)
	if errProject != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errProject.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report":      report,
		"sustainable": report.Sustainable(),
	})
}
