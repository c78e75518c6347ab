package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestPatientRepository_FindAll_SearchMatchesNombreOrExpediente(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	mock.ExpectQuery(`nombre ILIKE \$1 OR expediente ILIKE \$2`).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "expediente", "nombre"}).
			AddRow(1, "EXP-001", "Ana Torres").
			AddRow(2, "BANA-7", "Luis Mora"))

	patients, err := repo.FindAll(context.Background(), db, "ana")

	assert.NoError(t, err)
	assert.Len(t, patients, 2)
	assert.Equal(t, "Ana Torres", patients[0].Nombre)
	assert.Equal(t, "BANA-7", patients[1].Expediente)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_FindAll_BlankSearchListsAllNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository()

	// No WHERE clause may appear between the table and the ordering.
	mock.ExpectQuery(`SELECT \* FROM "patients" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "expediente", "nombre"}).
			AddRow(3, "EXP-003", "Carlos Vega"))

	patients, err := repo.FindAll(context.Background(), db, "")

	assert.NoError(t, err)
	assert.Len(t, patients, 1)
	assert.Equal(t, uint(3), patients[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
