package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Expose DB if needed
func (r *AppointmentRepository) DB() *gorm.DB {
	return r.db
}

// FindByDateAndDoctor returns the conflict candidates for an overlap check:
// every appointment on the given day for the given doctor, minus excludeID
// when re-validating an update against its own prior record. Exclusion is by
// primary key only.
func (r *AppointmentRepository) FindByDateAndDoctor(tx *gorm.DB, date, doctor string, excludeID *uuid.UUID) ([]models.Appointment, error) {
	if tx == nil {
		tx = r.db
	}

	var appts []models.Appointment
	query := tx.Where("date = ? AND doctor = ?", date, doctor)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	err := query.Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) GetByID(id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.First(&appt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// List returns appointments ordered by date then time. scope may be
// "upcoming" or "past" relative to today; anything else returns everything.
func (r *AppointmentRepository) List(scope, today string) ([]models.Appointment, error) {
	var appts []models.Appointment

	query := r.db.Model(&models.Appointment{}).Order("date ASC, time ASC")
	switch scope {
	case "upcoming":
		query = query.Where("date >= ?", today)
	case "past":
		query = query.Where("date < ?", today)
	}

	err := query.Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) ListForPatient(patientID uuid.UUID) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appts).Error
	return appts, err
}
