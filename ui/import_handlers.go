package ui

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"fieldops/app"
	"fieldops/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleImport receives one uploaded spreadsheet and reconciles it into the
// selected master-data target. Responds with {count, message} on success or
// {error} with an operator-readable diagnostic on failure.
func (s *Server) handleImport(c *gin.Context) {
	target, err := app.ParseImportTarget(c.Param("target"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if fileHeader.Size > s.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds the %d byte upload limit", s.maxUpload),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	summary, err := s.imports.Import(c.Request.Context(), target, data)
	if err != nil {
		log.Printf("[API] Import %s failed at %s: %v", target, summary.Stage, err)
		c.JSON(importErrorStatus(err), gin.H{
			"error": err.Error(),
			"stage": summary.Stage,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   summary.Count,
		"job_id":  summary.JobID,
		"message": fmt.Sprintf("imported %d %s records", summary.Count, target),
	})
}

// importErrorStatus maps the error taxonomy onto HTTP statuses: input errors
// are the client's fault, structural errors mean the spreadsheet needs
// fixing, persistence errors are ours.
func importErrorStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeEmptyUpload, errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeHeaderNotFound, errors.CodeKeyColumnMissing:
		return http.StatusUnprocessableEntity
	case errors.CodeDatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
