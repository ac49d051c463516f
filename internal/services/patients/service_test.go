package patients

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

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Patient{}))

	return NewService(repository.NewPatientRepository(db))
}

func TestSearchByNameOrPhone(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&models.Patient{Name: "Ana Silva", Phone: "555-1234"})
	require.NoError(t, err)
	_, err = svc.Create(&models.Patient{Name: "Bruno Costa", Phone: "555-9876"})
	require.NoError(t, err)

	byName, err := svc.Search("ana")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ana Silva", byName[0].Name)

	byPhone, err := svc.Search("9876")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Bruno Costa", byPhone[0].Name)

	all, err := svc.Search("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestValidation(t *testing.T) {
	svc := newTestService(t)

	var invalid *apperrors.ValidationError

	_, err := svc.Create(&models.Patient{Name: "   "})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "name", invalid.Field)

	_, err = svc.Create(&models.Patient{Name: "Ana", Gender: "unknown"})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "gender", invalid.Field)
}

func TestUpdateAndDeleteUnknownPatient(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(&models.Patient{ID: uuid.New(), Name: "Ghost"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
