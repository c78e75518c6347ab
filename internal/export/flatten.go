package export

import (
	"strconv"
	"strings"
	"time"

	"clinical-records-api/internal/domain/entity"
)

// placeholder stands in for sections with nothing recorded.
const placeholder = "—"

// timestampLayout renders server timestamps the way the clinic reads them,
// day first.
const timestampLayout = "02/01/2006 15:04:05"

func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// labeled renders "Label: value" entries inside a flattened section, dropping
// the entry entirely when the value is blank.
func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

// flag renders a boolean group member: the label when set, nothing otherwise.
func flag(set bool, label string) string {
	if set {
		return label
	}
	return ""
}

// joinSection comma-joins the non-blank parts of a section, or returns the
// placeholder when every part is blank.
func joinSection(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return placeholder
	}
	return strings.Join(kept, ", ")
}

// PatientRows is the field/value projection of a patient used by the identity
// block of every PDF. Optional fields render blank, not as the placeholder;
// the registry never showed a dash for an unset occupation.
func PatientRows(p *entity.Patient) [][2]string {
	return [][2]string{
		{"Expediente", p.Expediente},
		{"Nombre", p.Nombre},
		{"Sexo", strOrEmpty(p.Sexo)},
		{"Edad", intOrEmpty(p.Edad)},
		{"Estado civil", strOrEmpty(p.EstadoCivil)},
		{"Ocupación", strOrEmpty(p.Ocupacion)},
		{"Creado", FormatTimestamp(p.CreatedAt)},
	}
}

// RecordRows flattens every clinical section of a consultation into
// section/content pairs. Boolean groups become comma-joined label lists plus
// any labeled free-text sub-fields; free-text sections render verbatim or as
// the placeholder when absent.
func RecordRows(r *entity.ClinicalRecord) [][2]string {
	return [][2]string{
		{"Fecha creación consulta", FormatTimestamp(r.CreatedAt)},
		{"Motivo de consulta", orPlaceholder(r.MotivoConsulta)},
		{"Enfermedad actual", orPlaceholder(r.EnfermedadActual)},
		{"Antecedentes personales patológicos", joinSection(
			flag(r.ApDiabetes, "Diabetes"),
			flag(r.ApHta, "HTA"),
			flag(r.ApCardiovascular, "Cardiovascular"),
			flag(r.ApRespiratoria, "Respiratoria"),
			flag(r.ApRenal, "Renal"),
			labeled("Alergias", r.ApAlergias),
			labeled("Otros", r.ApOtros),
		)},
		{"Antecedentes personales no patológicos", joinSection(
			labeled("Alimentación", r.AnpAlimentacion),
			labeled("Actividad física", r.AnpActividadFisica),
			labeled("Alcohol", r.AnpAlcohol),
			labeled("Tabaco", r.AnpTabaco),
			labeled("Drogas", r.AnpDrogas),
			labeled("Vacunación", r.AnpVacunacion),
		)},
		{"Gineco-obstétricos", joinSection(
			labeled("Menarca", intOrEmpty(r.GoMenarca)),
			labeled("FUM", strOrEmpty(r.GoFum)),
			labeled("Ciclo", r.GoCiclo),
			labeled("Embarazos", intOrEmpty(r.GoEmbarazos)),
			labeled("Partos", intOrEmpty(r.GoPartos)),
			labeled("Cesáreas", intOrEmpty(r.GoCesareas)),
			labeled("Abortos", intOrEmpty(r.GoAbortos)),
		)},
		{"Antecedentes familiares", joinSection(
			flag(r.AfDiabetes, "Diabetes"),
			flag(r.AfHta, "HTA"),
			flag(r.AfCancer, "Cáncer"),
			labeled("Hereditarias", r.AfHereditarias),
			labeled("Otros", r.AfOtros),
		)},
		{"Revisión por sistemas", joinSection(
			labeled("General", r.RsGeneral),
			labeled("Cardiovascular", r.RsCardiovascular),
			labeled("Respiratorio", r.RsRespiratorio),
			labeled("Digestivo", r.RsDigestivo),
			labeled("Genitourinario", r.RsGenitourinario),
			labeled("Neurológico", r.RsNeurologico),
			labeled("Músculo-esquelético", r.RsMusculoesqueletico),
		)},
		{"Exploración física", joinSection(
			labeled("TA", r.SvTa),
			labeled("FC", r.SvFc),
			labeled("FR", r.SvFr),
			labeled("Temp", r.SvTemp),
			labeled("Peso", floatOrEmpty(r.SvPeso)),
			labeled("Talla", floatOrEmpty(r.SvTalla)),
			labeled("IMC", floatOrEmpty(r.SvImc)),
			labeled("Cabeza y cuello", r.EfCabezaCuello),
			labeled("Tórax", r.EfTorax),
			labeled("Abdomen", r.EfAbdomen),
			labeled("Extremidades", r.EfExtremidades),
			labeled("Neurológico", r.EfNeurologico),
		)},
		{"Resultados de estudios complementarios", orPlaceholder(r.Estudios)},
		{"Diagnóstico(s)", orPlaceholder(r.Diagnosticos)},
		{"Plan / Tratamiento", orPlaceholder(r.Plan)},
		{"Observaciones", orPlaceholder(r.Observaciones)},
	}
}
