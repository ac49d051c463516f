package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/logger"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/repository"
)

type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Service struct {
	invoiceRepo *repository.InvoiceRepository
	patientRepo *repository.PatientRepository
	db          *gorm.DB
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	patientRepo *repository.PatientRepository,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		patientRepo: patientRepo,
		db:          invoiceRepo.DB(),
	}
}

// CreateInvoice persists an invoice and its items in one transaction.
//
// The stored total is the exact decimal sum of the raw amounts; each stored
// item amount is independently rounded to 2dp, half away from zero. The total
// can therefore differ from the sum of the stored items by rounding error.
// That matches the clinic's historical invoices and must not be normalized.
func (s *Service) CreateInvoice(patientID uuid.UUID, invoiceDate string, items []LineItem) (*models.Invoice, []models.InvoiceItem, error) {
	if len(items) == 0 {
		return nil, nil, apperrors.Invalid("items", "at least one line item is required")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, nil, apperrors.Invalid("items", "every line item needs a description")
		}
	}
	if _, err := time.Parse("2006-01-02", invoiceDate); err != nil {
		return nil, nil, apperrors.Invalid("invoice_date", "expected YYYY-MM-DD")
	}
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return nil, nil, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	invoice := &models.Invoice{
		ID:          uuid.New(),
		PatientID:   patientID,
		InvoiceDate: invoiceDate,
		Total:       total,
		Paid:        decimal.Zero,
	}

	stored := make([]models.InvoiceItem, 0, len(items))
	for i, item := range items {
		stored = append(stored, models.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoice.ID,
			Position:    i,
			Description: item.Description,
			Amount:      item.Amount.Round(2),
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		return tx.Create(&stored).Error
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Get().Info("invoice created",
		zap.String("id", invoice.ID.String()),
		zap.String("patient_id", patientID.String()),
		zap.String("total", total.String()),
		zap.Int("items", len(stored)),
	)
	return invoice, stored, nil
}

func (s *Service) Get(invoiceID uuid.UUID) (*models.Invoice, []models.InvoiceItem, error) {
	invoice, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.invoiceRepo.ListItems(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	return invoice, items, nil
}

func (s *Service) ListForPatient(patientID uuid.UUID) ([]models.Invoice, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListForPatient(patientID)
}
