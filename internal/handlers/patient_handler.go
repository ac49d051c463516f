package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/services/patients"
)

type PatientHandler struct {
	service *patients.Service
}

func NewPatientHandler(s *patients.Service) *PatientHandler {
	return &PatientHandler{service: s}
}

type patientPayload struct {
	Name    string `json:"name"`
	Age     *int   `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var payload patientPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patient, err := h.service.Create(&models.Patient{
		Name:    payload.Name,
		Age:     payload.Age,
		Gender:  payload.Gender,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "patient created", "patient": patient})
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	var payload patientPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patient, err := h.service.Update(&models.Patient{
		ID:      id,
		Name:    payload.Name,
		Age:     payload.Age,
		Gender:  payload.Gender,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "patient updated", "patient": patient})
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "patient deleted"})
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	patient, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// List searches patients by name or phone; an empty q returns everyone.
func (h *PatientHandler) List(c *gin.Context) {
	items, err := h.service.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": items})
}
