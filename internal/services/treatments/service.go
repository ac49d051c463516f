package treatments

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/repository"
)

type Service struct {
	repo        *repository.TreatmentRepository
	patientRepo *repository.PatientRepository
}

func NewService(repo *repository.TreatmentRepository, patientRepo *repository.PatientRepository) *Service {
	return &Service{repo: repo, patientRepo: patientRepo}
}

func (s *Service) Create(t *models.Treatment) (*models.Treatment, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	if _, err := s.patientRepo.GetByID(t.PatientID); err != nil {
		return nil, err
	}
	t.ID = uuid.New()
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(t *models.Treatment) (*models.Treatment, error) {
	existing, err := s.repo.GetByID(t.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	if _, err := s.patientRepo.GetByID(t.PatientID); err != nil {
		return nil, err
	}
	t.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *Service) ListForPatient(patientID uuid.UUID) ([]models.Treatment, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return nil, err
	}
	return s.repo.ListForPatient(patientID)
}

func (s *Service) RevenueByMonth() ([]repository.RevenueRow, error) {
	return s.repo.RevenueByMonth()
}

func validate(t *models.Treatment) error {
	if strings.TrimSpace(t.Type) == "" {
		return apperrors.Invalid("type", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return apperrors.Invalid("date", "expected YYYY-MM-DD")
	}
	if t.Cost.IsNegative() {
		return apperrors.Invalid("cost", "must not be negative")
	}
	return nil
}
