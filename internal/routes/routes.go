package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/config"
	handler "clinic-desk-backend/internal/handlers"
	"clinic-desk-backend/internal/repository"
	"clinic-desk-backend/internal/services/backup"
	"clinic-desk-backend/internal/services/billing"
	"clinic-desk-backend/internal/services/patients"
	"clinic-desk-backend/internal/services/scheduling"
	"clinic-desk-backend/internal/services/treatments"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	treatmentRepo := repository.NewTreatmentRepository(db)

	patientService := patients.NewService(patientRepo)
	schedulingService := scheduling.NewService(appointmentRepo, patientRepo)
	billingService := billing.NewService(invoiceRepo, patientRepo)
	treatmentService := treatments.NewService(treatmentRepo, patientRepo)
	backupService := backup.NewService(config.DBPath())

	patientHandler := handler.NewPatientHandler(patientService)
	appointmentHandler := handler.NewAppointmentHandler(schedulingService)
	invoiceHandler := handler.NewInvoiceHandler(billingService)
	treatmentHandler := handler.NewTreatmentHandler(treatmentService)
	backupHandler := handler.NewBackupHandler(backupService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Patient routes
	p := api.Group("/patients")
	p.POST("", patientHandler.Create)
	p.GET("", patientHandler.List)
	p.GET("/:id", patientHandler.Get)
	p.PUT("/:id", patientHandler.Update)
	p.DELETE("/:id", patientHandler.Delete)
	p.GET("/:id/appointments", appointmentHandler.ListForPatient)
	p.GET("/:id/treatments", treatmentHandler.ListForPatient)
	p.GET("/:id/invoices", invoiceHandler.ListForPatient)

	// Appointment routes
	a := api.Group("/appointments")
	a.POST("", appointmentHandler.Create)
	a.GET("", appointmentHandler.List)
	a.GET("/:id", appointmentHandler.Get)
	a.PUT("/:id", appointmentHandler.Update)
	a.DELETE("/:id", appointmentHandler.Delete)

	// Invoice routes
	i := api.Group("/invoices")
	i.POST("", invoiceHandler.Create)
	i.GET("/:id", invoiceHandler.Get)

	// Treatment routes
	t := api.Group("/treatments")
	t.POST("", treatmentHandler.Create)
	t.PUT("/:id", treatmentHandler.Update)
	t.DELETE("/:id", treatmentHandler.Delete)

	// Reports
	api.GET("/reports/revenue-by-month", treatmentHandler.RevenueByMonth)

	// Admin
	admin := api.Group("/admin")
	admin.POST("/backup", backupHandler.Backup)
	admin.POST("/restore", backupHandler.Restore)
}
