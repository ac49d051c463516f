package repository

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/models"
)

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

func (r *TreatmentRepository) Create(t *models.Treatment) error {
	return r.db.Create(t).Error
}

func (r *TreatmentRepository) Update(t *models.Treatment) error {
	return r.db.Save(t).Error
}

func (r *TreatmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Treatment{}, "id = ?", id).Error
}

func (r *TreatmentRepository) GetByID(id uuid.UUID) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.db.First(&treatment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &treatment, nil
}

func (r *TreatmentRepository) ListForPatient(patientID uuid.UUID) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&treatments).Error
	return treatments, err
}

type RevenueRow struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// RevenueByMonth sums treatment costs grouped by the YYYY-MM prefix of the
// treatment date.
func (r *TreatmentRepository) RevenueByMonth() ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.Model(&models.Treatment{}).
		Select("substr(date, 1, 7) AS month, COALESCE(SUM(cost), 0) AS total").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}
