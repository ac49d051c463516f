package patients

import (
	"strings"

	"github.com/google/uuid"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/repository"
)

type Service struct {
	repo *repository.PatientRepository
}

func NewService(repo *repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(p *models.Patient) (*models.Patient, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	p.ID = uuid.New()
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(p *models.Patient) (*models.Patient, error) {
	existing, err := s.repo.GetByID(p.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *Service) Get(id uuid.UUID) (*models.Patient, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Search(query string) ([]models.Patient, error) {
	return s.repo.Search(query)
}

func validate(p *models.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.Invalid("name", "must not be empty")
	}
	switch p.Gender {
	case "", "Male", "Female", "Other":
	default:
		return apperrors.Invalid("gender", "must be Male, Female or Other")
	}
	if p.Age != nil && *p.Age < 0 {
		return apperrors.Invalid("age", "must not be negative")
	}
	return nil
}
