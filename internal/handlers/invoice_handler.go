package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-desk-backend/internal/services/billing"
)

type InvoiceHandler struct {
	service *billing.Service
}

func NewInvoiceHandler(s *billing.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		PatientID   string             `json:"patient_id"`
		InvoiceDate string             `json:"invoice_date"`
		Items       []billing.LineItem `json:"items"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patientID, err := uuid.Parse(payload.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	invoice, items, err := h.service.CreateInvoice(patientID, payload.InvoiceDate, payload.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "invoice created",
		"invoice": invoice,
		"items":   items,
	})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, items, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice, "items": items})
}

func (h *InvoiceHandler) ListForPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	invoices, err := h.service.ListForPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}
