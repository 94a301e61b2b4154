package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handlePriceSummary serves the price distribution widget for the admin
// dashboard.
func (s *Server) handlePriceSummary(c *gin.Context) {
	summary, err := s.priceStats.Summarize(c.Request.Context())
	if err != nil {
		log.Printf("[API] Failed to summarize prices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute price summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
