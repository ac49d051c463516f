package scheduling

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/models"
	"clinic-desk-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Appointment{},
		&models.ScheduleAuditLog{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB, uuid.UUID) {
	t.Helper()

	db := newTestDB(t)
	patient := &models.Patient{ID: uuid.New(), Name: "Ana Silva"}
	require.NoError(t, db.Create(patient).Error)

	svc := NewService(
		repository.NewAppointmentRepository(db),
		repository.NewPatientRepository(db),
	)
	return svc, db, patient.ID
}

func appointment(patientID uuid.UUID, doctor, date, clock string, duration int) *models.Appointment {
	return &models.Appointment{
		PatientID:       patientID,
		Date:            date,
		Time:            clock,
		DurationMinutes: duration,
		Doctor:          doctor,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 540, 570, 540, 570, true},
		{"contained", 540, 600, 550, 560, true},
		{"partial front", 540, 570, 555, 585, true},
		{"partial back", 555, 585, 540, 570, true},
		{"touching end to start", 540, 570, 570, 600, false},
		{"touching start to end", 570, 600, 540, 570, false},
		{"disjoint", 540, 570, 600, 630, false},
		{"one minute overlap", 540, 571, 570, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	m, err := minutesOfDay("09:15")
	require.NoError(t, err)
	assert.Equal(t, 555, m)

	m, err = minutesOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = minutesOfDay("9 o'clock")
	var invalid *apperrors.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreateConflictSameDoctorSameDay(t *testing.T) {
	svc, _, patientID := newTestService(t)

	_, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:15", 30))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Smith", conflict.Doctor)
	assert.Equal(t, "2024-01-10", conflict.Date)
	assert.Equal(t, "09:00", conflict.Start)
	assert.Equal(t, "09:30", conflict.End)

	// same inputs, no intervening writes: same answer
	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:15", 30))
	require.ErrorAs(t, err, &conflict)
}

func TestCreateBackToBackIsNotConflict(t *testing.T) {
	svc, _, patientID := newTestService(t)

	_, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	// ends exactly when the next one starts
	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:30", 30))
	require.NoError(t, err)

	// and one ending exactly at 09:00
	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "08:30", 30))
	require.NoError(t, err)
}

func TestNoConflictAcrossDoctorOrDate(t *testing.T) {
	svc, _, patientID := newTestService(t)

	_, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(appointment(patientID, "Jones", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-11", "09:00", 30))
	require.NoError(t, err)
}

func TestUpdateExcludesOwnRecord(t *testing.T) {
	svc, _, patientID := newTestService(t)

	created, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	// resubmitting the exact same slot must not conflict with itself
	resubmit := appointment(patientID, "Smith", "2024-01-10", "09:00", 30)
	resubmit.ID = created.ID
	_, err = svc.Update(resubmit)
	require.NoError(t, err)

	// nudging it into its own old range is fine too
	moved := appointment(patientID, "Smith", "2024-01-10", "09:10", 30)
	moved.ID = created.ID
	_, err = svc.Update(moved)
	require.NoError(t, err)

	// but another appointment's range still blocks the move
	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "10:00", 30))
	require.NoError(t, err)

	blocked := appointment(patientID, "Smith", "2024-01-10", "10:15", 30)
	blocked.ID = created.ID
	_, err = svc.Update(blocked)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "10:00", conflict.Start)
}

func TestDeleteFreesTheSlot(t *testing.T) {
	svc, _, patientID := newTestService(t)

	created, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)
}

func TestValidationRejectedBeforeConflictScan(t *testing.T) {
	svc, _, patientID := newTestService(t)

	var invalid *apperrors.ValidationError

	_, err := svc.Create(appointment(patientID, "", "2024-01-10", "09:00", 30))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "doctor", invalid.Field)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 0))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "duration_minutes", invalid.Field)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", -15))
	require.ErrorAs(t, err, &invalid)

	_, err = svc.Create(appointment(patientID, "Smith", "10/01/2024", "09:00", 30))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "date", invalid.Field)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "25:99", 30))
	require.ErrorAs(t, err, &invalid)
}

func TestCreateUnknownPatient(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(appointment(uuid.New(), "Smith", "2024-01-10", "09:00", 30))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestConflictWritesNothing(t *testing.T) {
	svc, db, patientID := newTestService(t)

	_, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:15", 30))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	var appts int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&appts).Error)
	assert.Equal(t, int64(1), appts)

	var audits int64
	require.NoError(t, db.Model(&models.ScheduleAuditLog{}).Count(&audits).Error)
	assert.Equal(t, int64(1), audits)
}

func TestAuditTrail(t *testing.T) {
	svc, db, patientID := newTestService(t)

	created, err := svc.Create(appointment(patientID, "Smith", "2024-01-10", "09:00", 30))
	require.NoError(t, err)

	moved := appointment(patientID, "Smith", "2024-01-10", "11:00", 45)
	moved.ID = created.ID
	_, err = svc.Update(moved)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var logs []models.ScheduleAuditLog
	require.NoError(t, db.Where("appointment_id = ?", created.ID).Find(&logs).Error)
	require.Len(t, logs, 3)

	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
		if l.Action == "updated" {
			assert.Contains(t, string(l.Details), "11:45")
		}
	}
	assert.ElementsMatch(t, []string{"created", "updated", "deleted"}, actions)
}

func TestListScopes(t *testing.T) {
	svc, _, patientID := newTestService(t)

	_, err := svc.Create(appointment(patientID, "Smith", "2019-06-01", "09:00", 30))
	require.NoError(t, err)
	_, err = svc.Create(appointment(patientID, "Smith", "2999-06-01", "09:00", 30))
	require.NoError(t, err)

	past, err := svc.List("past")
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "2019-06-01", past[0].Date)

	upcoming, err := svc.List("upcoming")
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2999-06-01", upcoming[0].Date)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
