package scheduling

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/logger"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/repository"
)

// ConflictError reports a double-booking attempt: the proposed slot overlaps
// an existing appointment for the same doctor on the same day. The range names
// the existing appointment's slot.
type ConflictError struct {
	Doctor string
	Date   string
	Start  string
	End    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("doctor %s is already booked on %s from %s to %s", e.Doctor, e.Date, e.Start, e.End)
}

type Service struct {
	apptRepo    *repository.AppointmentRepository
	patientRepo *repository.PatientRepository
	db          *gorm.DB
}

func NewService(
	apptRepo *repository.AppointmentRepository,
	patientRepo *repository.PatientRepository,
) *Service {
	return &Service{
		apptRepo:    apptRepo,
		patientRepo: patientRepo,
		db:          apptRepo.DB(),
	}
}

// Create validates the appointment and persists it iff the doctor's slot is
// free. The conflict scan and the insert run in one transaction, so a
// conflicting row cannot land between the check and the write.
func (s *Service) Create(appt *models.Appointment) (*models.Appointment, error) {
	if err := validate(appt); err != nil {
		return nil, err
	}
	if _, err := s.patientRepo.GetByID(appt.PatientID); err != nil {
		return nil, err
	}

	appt.ID = uuid.New()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureFree(tx, appt, nil); err != nil {
			return err
		}
		if err := tx.Create(appt).Error; err != nil {
			return err
		}
		return s.writeAudit(tx, appt, "created")
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("appointment created",
		zap.String("id", appt.ID.String()),
		zap.String("doctor", appt.Doctor),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return appt, nil
}

// Update re-validates the appointment against every slot except its own prior
// record, so moving an appointment to an adjacent or identical time never
// conflicts with itself.
func (s *Service) Update(appt *models.Appointment) (*models.Appointment, error) {
	existing, err := s.apptRepo.GetByID(appt.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(appt); err != nil {
		return nil, err
	}
	if _, err := s.patientRepo.GetByID(appt.PatientID); err != nil {
		return nil, err
	}

	appt.CreatedAt = existing.CreatedAt
	excludeID := appt.ID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureFree(tx, appt, &excludeID); err != nil {
			return err
		}
		if err := tx.Save(appt).Error; err != nil {
			return err
		}
		return s.writeAudit(tx, appt, "updated")
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("appointment updated",
		zap.String("id", appt.ID.String()),
		zap.String("doctor", appt.Doctor),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return appt, nil
}

// Delete removes an appointment unconditionally; no overlap invariant applies
// on delete.
func (s *Service) Delete(id uuid.UUID) error {
	appt, err := s.apptRepo.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
			return err
		}
		return s.writeAudit(tx, appt, "deleted")
	})
}

func (s *Service) Get(id uuid.UUID) (*models.Appointment, error) {
	return s.apptRepo.GetByID(id)
}

func (s *Service) List(scope string) ([]models.Appointment, error) {
	today := time.Now().Format("2006-01-02")
	return s.apptRepo.List(scope, today)
}

func (s *Service) ListForPatient(patientID uuid.UUID) ([]models.Appointment, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		return nil, err
	}
	return s.apptRepo.ListForPatient(patientID)
}

// ensureFree scans the doctor's day for an overlap with the proposed slot.
// Intervals are half-open [start, start+duration), so back-to-back bookings
// never conflict.
func (s *Service) ensureFree(tx *gorm.DB, appt *models.Appointment, excludeID *uuid.UUID) error {
	start, err := minutesOfDay(appt.Time)
	if err != nil {
		return err
	}
	end := start + appt.DurationMinutes

	others, err := s.apptRepo.FindByDateAndDoctor(tx, appt.Date, appt.Doctor, excludeID)
	if err != nil {
		return err
	}

	for _, other := range others {
		otherStart, err := minutesOfDay(other.Time)
		if err != nil {
			return err
		}
		otherEnd := otherStart + other.DurationMinutes
		if overlaps(start, end, otherStart, otherEnd) {
			return &ConflictError{
				Doctor: appt.Doctor,
				Date:   appt.Date,
				Start:  other.Time,
				End:    clockOf(otherEnd),
			}
		}
	}
	return nil
}

// overlaps is the half-open interval disjointness test: [aStart, aEnd) and
// [bStart, bEnd) overlap unless one ends at or before the other begins.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func minutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, apperrors.Invalid("time", "expected HH:MM in 24h format")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockOf(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func validate(appt *models.Appointment) error {
	if appt.Doctor == "" {
		return apperrors.Invalid("doctor", "must not be empty")
	}
	if appt.DurationMinutes <= 0 {
		return apperrors.Invalid("duration_minutes", "must be a positive number of minutes")
	}
	if _, err := time.Parse("2006-01-02", appt.Date); err != nil {
		return apperrors.Invalid("date", "expected YYYY-MM-DD")
	}
	if _, err := minutesOfDay(appt.Time); err != nil {
		return err
	}
	return nil
}

func (s *Service) writeAudit(tx *gorm.DB, appt *models.Appointment, action string) error {
	start, err := minutesOfDay(appt.Time)
	if err != nil {
		return err
	}

	details, err := json.Marshal(map[string]interface{}{
		"doctor":   appt.Doctor,
		"date":     appt.Date,
		"start":    appt.Time,
		"end":      clockOf(start + appt.DurationMinutes),
		"duration": appt.DurationMinutes,
	})
	if err != nil {
		return err
	}

	return tx.Create(&models.ScheduleAuditLog{
		ID:            uuid.New(),
		AppointmentID: appt.ID,
		Action:        action,
		Details:       datatypes.JSON(details),
	}).Error
}
