package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/models"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(p *models.Patient) error {
	return r.db.Create(p).Error
}

func (r *PatientRepository) Update(p *models.Patient) error {
	return r.db.Save(p).Error
}

func (r *PatientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Patient{}, "id = ?", id).Error
}

// GetByID fetch a single patient by ID
func (r *PatientRepository) GetByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Search performs a fuzzy search on name or phone (simple LIKE)
func (r *PatientRepository) Search(query string) ([]models.Patient, error) {
	var patients []models.Patient

	dbQuery := r.db.Model(&models.Patient{}).Order("name ASC")

	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	err := dbQuery.Find(&patients).Error
	return patients, err
}
