package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Treatment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID   uuid.UUID       `gorm:"index" json:"patient_id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
