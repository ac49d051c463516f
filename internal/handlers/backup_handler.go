package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-desk-backend/internal/services/backup"
)

type BackupHandler struct {
	service *backup.Service
}

func NewBackupHandler(s *backup.Service) *BackupHandler {
	return &BackupHandler{service: s}
}

func (h *BackupHandler) Backup(c *gin.Context) {
	var payload struct {
		Destination string `json:"destination"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination path required"})
		return
	}

	path, err := h.service.Backup(payload.Destination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "backup written", "path": path})
}

func (h *BackupHandler) Restore(c *gin.Context) {
	var payload struct {
		Source string `json:"source"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.Source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source path required"})
		return
	}

	if err := h.service.Restore(payload.Source); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "database restored"})
}
