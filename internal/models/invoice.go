package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice.Total is the exact decimal sum of the raw line amounts; the item
// amounts are each rounded to 2dp on persistence, so Total and the sum of the
// stored items can differ by rounding error. That asymmetry is deliberate.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID   uuid.UUID       `gorm:"index" json:"patient_id"`
	InvoiceDate string          `json:"invoice_date"`
	Total       decimal.Decimal `gorm:"type:decimal(14,6)" json:"total"`
	Paid        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"paid"`
	CreatedAt   time.Time       `json:"created_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"index" json:"invoice_id"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
}
