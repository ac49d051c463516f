package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScheduleAuditLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AppointmentID uuid.UUID `gorm:"index"`
	Action        string
	Details       datatypes.JSON
	CreatedAt     time.Time
}
