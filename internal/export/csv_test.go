package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"clinical-records-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestPatientsCSV_HeaderAndRows(t *testing.T) {
	createdAt := time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
	patients := []entity.Patient{
		{
			Expediente:  "EXP-001",
			Nombre:      "Ana López",
			Sexo:        strPtr("Femenino"),
			Edad:        intPtr(34),
			EstadoCivil: strPtr("Casada"),
			Ocupacion:   strPtr("Docente"),
			CreatedAt:   createdAt,
		},
		{
			Expediente: "EXP-002",
			Nombre:     "Pérez, Luis",
			CreatedAt:  createdAt,
		},
	}

	data, err := PatientsCSV(patients)
	assert.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Expediente", "Nombre", "Sexo", "Edad", "Estado civil", "Ocupación", "Creado"}, rows[0])
	assert.Equal(t, []string{"EXP-001", "Ana López", "Femenino", "34", "Casada", "Docente", "12/05/2024 09:30:00"}, rows[1])

	// A comma inside the name survives the round trip; optional fields are blank
	assert.Equal(t, []string{"EXP-002", "Pérez, Luis", "", "", "", "", "12/05/2024 09:30:00"}, rows[2])
}

func TestPatientsCSV_EmptyRegistryStillHasHeader(t *testing.T) {
	data, err := PatientsCSV(nil)
	assert.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPatientsCSVFilename(t *testing.T) {
	now := time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "pacientes_2024-05-12.csv", PatientsCSVFilename(now))
}
