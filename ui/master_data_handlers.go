package ui

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// handleListStores returns a page of canonical store records
func (s *Server) handleListStores(c *gin.Context) {
	limit, offset := pageParams(c)

	records, err := s.stores.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("[API] Failed to list stores: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve stores"})
		return
	}

	total, err := s.stores.Count(c.Request.Context())
	if err != nil {
		log.Printf("[API] Failed to count stores: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": records,
		"count":  len(records),
		"total":  total,
	})
}

// handleListPriceItems returns a page of price list items
func (s *Server) handleListPriceItems(c *gin.Context) {
	limit, offset := pageParams(c)

	items, err := s.prices.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("[API] Failed to list price items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve price items"})
		return
	}

	total, err := s.prices.Count(c.Request.Context())
	if err != nil {
		log.Printf("[API] Failed to count price items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve price items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
		"total": total,
	})
}

// pageParams reads limit/offset query parameters with sane bounds
func pageParams(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
