package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/services/treatments"
)

type TreatmentHandler struct {
	service *treatments.Service
}

func NewTreatmentHandler(s *treatments.Service) *TreatmentHandler {
	return &TreatmentHandler{service: s}
}

type treatmentPayload struct {
	PatientID   string          `json:"patient_id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
}

func (p *treatmentPayload) toModel() (*models.Treatment, bool) {
	patientID, err := uuid.Parse(p.PatientID)
	if err != nil {
		return nil, false
	}

	return &models.Treatment{
		PatientID:   patientID,
		Date:        p.Date,
		Type:        p.Type,
		Description: p.Description,
		Cost:        p.Cost,
	}, true
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var payload treatmentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	treatment, ok := payload.toModel()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	created, err := h.service.Create(treatment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "treatment recorded", "treatment": created})
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid treatment ID"})
		return
	}

	var payload treatmentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	treatment, ok := payload.toModel()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}
	treatment.ID = id

	updated, err := h.service.Update(treatment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "treatment updated", "treatment": updated})
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid treatment ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "treatment deleted"})
}

func (h *TreatmentHandler) ListForPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	items, err := h.service.ListForPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"treatments": items})
}

// RevenueByMonth backs the monthly revenue report.
func (h *TreatmentHandler) RevenueByMonth(c *gin.Context) {
	rows, err := h.service.RevenueByMonth()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}
