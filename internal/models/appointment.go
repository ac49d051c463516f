package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment times are stored in the clinic's wire formats: Date as
// "2006-01-02" and Time as "15:04" (24h, minute precision).
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID `gorm:"index" json:"patient_id"`
	Date            string    `gorm:"index:idx_appointments_date_doctor" json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `gorm:"default:30" json:"duration_minutes"`
	Doctor          string    `gorm:"index:idx_appointments_date_doctor" json:"doctor"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
