package export

import (
	"bytes"
	"fmt"
	"time"

	"clinical-records-api/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageBottom = 282 // A4 height minus the break margin
	lineHeight = 5.0
)

// translator maps UTF-8 to the cp1252 range the core fonts cover; the clinic
// labels carry accents and the em-dash placeholder.
func newDoc() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func addTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// keyValueTable draws a two-column table with wrapped cells. Row height
// follows the taller of the two cells.
func keyValueTable(pdf *gofpdf.Fpdf, tr func(string) string, head [2]string, rows [][2]string) {
	const labelW, valueW = 60.0, 130.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelW, 7, tr(head[0]), "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueW, 7, tr(head[1]), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		label := tr(row[0])
		value := tr(row[1])

		labelLines := len(pdf.SplitText(label, labelW-3))
		valueLines := len(pdf.SplitText(value, valueW-3))
		n := labelLines
		if valueLines > n {
			n = valueLines
		}
		if n == 0 {
			n = 1
		}
		h := float64(n)*lineHeight + 2

		if pdf.GetY()+h > pageBottom {
			pdf.AddPage()
		}

		x, y := pdf.GetXY()
		pdf.Rect(x, y, labelW, h, "D")
		pdf.Rect(x+labelW, y, valueW, h, "D")
		pdf.SetXY(x+1.5, y+1)
		pdf.MultiCell(labelW-3, lineHeight, label, "", "L", false)
		pdf.SetXY(x+labelW+1.5, y+1)
		pdf.MultiCell(valueW-3, lineHeight, value, "", "L", false)
		pdf.SetXY(x, y+h)
	}
}

// PatientsPDF renders the whole registry as a single table, one row per
// patient, same column set as the CSV export.
func PatientsPDF(patients []entity.Patient) ([]byte, error) {
	pdf, tr := newDoc()
	addTitle(pdf, tr, "Pacientes")

	widths := []float64{26, 48, 20, 12, 24, 26, 34}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range patientColumns {
		ln := 0
		if i == len(patientColumns)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", ln, "L", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i := range patients {
		p := &patients[i]
		cells := []string{
			p.Expediente,
			p.Nombre,
			strOrEmpty(p.Sexo),
			intOrEmpty(p.Edad),
			strOrEmpty(p.EstadoCivil),
			strOrEmpty(p.Ocupacion),
			FormatTimestamp(p.CreatedAt),
		}
		for j, cell := range cells {
			ln := 0
			if j == len(cells)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[j], 6, tr(cell), "1", ln, "L", false, 0, "")
		}
	}

	return output(pdf)
}

// PatientPDF renders a single patient as a field/value table.
func PatientPDF(p *entity.Patient) ([]byte, error) {
	pdf, tr := newDoc()
	addTitle(pdf, tr, "Paciente")
	keyValueTable(pdf, tr, [2]string{"Campo", "Valor"}, PatientRows(p))
	return output(pdf)
}

// RecordPDF renders one consultation: the patient identity block, then the
// flattened clinical sections.
func RecordPDF(p *entity.Patient, r *entity.ClinicalRecord) ([]byte, error) {
	pdf, tr := newDoc()
	addTitle(pdf, tr, "Expediente clínico")
	keyValueTable(pdf, tr, [2]string{"Campo", "Valor"}, PatientRows(p))
	pdf.Ln(8)
	keyValueTable(pdf, tr, [2]string{"Sección", "Contenido"}, RecordRows(r))
	return output(pdf)
}

// HistoryPDF renders the cover page with the patient identity and then one
// page per consultation, newest first. Page headings count down so the oldest
// consultation reads "Consulta #1".
func HistoryPDF(p *entity.Patient, records []entity.ClinicalRecord) ([]byte, error) {
	pdf, tr := newDoc()
	addTitle(pdf, tr, "Historial clínico completo")
	keyValueTable(pdf, tr, [2]string{"Campo", "Valor"}, PatientRows(p))

	for i := range records {
		pdf.AddPage()
		addTitle(pdf, tr, fmt.Sprintf("Consulta #%d", len(records)-i))
		keyValueTable(pdf, tr, [2]string{"Sección", "Contenido"}, RecordRows(&records[i]))
	}

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func PatientsPDFFilename(now time.Time) string {
	return fmt.Sprintf("pacientes_%s.pdf", now.Format("2006-01-02"))
}

func PatientPDFFilename(expediente string) string {
	return fmt.Sprintf("paciente_%s.pdf", expediente)
}

func RecordPDFFilename(expediente string, recordID uint) string {
	return fmt.Sprintf("expediente_%s_%d.pdf", expediente, recordID)
}

func HistoryPDFFilename(expediente string) string {
	return fmt.Sprintf("historial_%s.pdf", expediente)
}
