package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"clinical-records-api/internal/domain/entity"
)

// patientColumns is the fixed header of the registry export, independent of
// whatever search filter was active when the export was requested.
var patientColumns = []string{
	"Expediente", "Nombre", "Sexo", "Edad", "Estado civil", "Ocupación", "Creado",
}

// PatientsCSV renders the whole registry as RFC 4180 CSV. encoding/csv takes
// care of quoting names that carry commas, quotes or newlines.
func PatientsCSV(patients []entity.Patient) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(patientColumns); err != nil {
		return nil, err
	}
	for i := range patients {
		p := &patients[i]
		row := []string{
			p.Expediente,
			p.Nombre,
			strOrEmpty(p.Sexo),
			intOrEmpty(p.Edad),
			strOrEmpty(p.EstadoCivil),
			strOrEmpty(p.Ocupacion),
			FormatTimestamp(p.CreatedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PatientsCSVFilename stamps the export with the current date.
func PatientsCSVFilename(now time.Time) string {
	return fmt.Sprintf("pacientes_%s.csv", now.Format("2006-01-02"))
}
