package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/services/scheduling"
)

type AppointmentHandler struct {
	service *scheduling.Service
}

func NewAppointmentHandler(s *scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

type appointmentPayload struct {
	PatientID       string `json:"patient_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Doctor          string `json:"doctor"`
	Notes           string `json:"notes"`
}

func (p *appointmentPayload) toModel() (*models.Appointment, bool) {
	patientID, err := uuid.Parse(p.PatientID)
	if err != nil {
		return nil, false
	}

	duration := p.DurationMinutes
	if duration == 0 {
		duration = 30
	}

	return &models.Appointment{
		PatientID:       patientID,
		Date:            p.Date,
		Time:            p.Time,
		DurationMinutes: duration,
		Doctor:          p.Doctor,
		Notes:           p.Notes,
	}, true
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload appointmentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	appt, ok := payload.toModel()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	created, err := h.service.Create(appt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "appointment created", "appointment": created})
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var payload appointmentPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	appt, ok := payload.toModel()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}
	appt.ID = id

	updated, err := h.service.Update(appt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment updated", "appointment": updated})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	appt, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// List returns all appointments; ?scope=upcoming or ?scope=past narrows to
// either side of today.
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Query("scope"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": items})
}

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"appointments": items})
}
