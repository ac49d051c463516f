package main

import (
	"log"
	"time"

	"clinic-desk-backend/internal/config"
	"clinic-desk-backend/internal/logger"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	logger.Initialize()
	defer logger.Get().Sync()

	db := config.InitDB()

	db.AutoMigrate(
		&models.Patient{},
		&models.Appointment{},
		&models.Treatment{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.ScheduleAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	r.Run(config.ServerAddr())
}
