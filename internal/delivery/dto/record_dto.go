package dto

import (
	"time"

	"github.com/google/uuid"
)

// SaveRecordRequest is the full consultation form. Numeric and date fields
// arrive as strings straight from the form so blank stays distinguishable
// from zero; they are coerced at the normalization boundary. sv_imc is
// accepted but ignored: the service derives it from peso and talla.
//
// No field is individually required; an all-blank consultation is a valid
// submission.
type SaveRecordRequest struct {
	MotivoConsulta   string `json:"motivo_consulta"`
	EnfermedadActual string `json:"enfermedad_actual"`

	ApDiabetes       bool   `json:"ap_diabetes"`
	ApHta            bool   `json:"ap_hta"`
	ApCardiovascular bool   `json:"ap_cardiovascular"`
	ApRespiratoria   bool   `json:"ap_respiratoria"`
	ApRenal          bool   `json:"ap_renal"`
	ApAlergias       string `json:"ap_alergias"`
	ApOtros          string `json:"ap_otros"`

	AnpAlimentacion    string `json:"anp_alimentacion"`
	AnpActividadFisica string `json:"anp_actividad_fisica"`
	AnpAlcohol         string `json:"anp_alcohol"`
	AnpTabaco          string `json:"anp_tabaco"`
	AnpDrogas          string `json:"anp_drogas"`
	AnpVacunacion      string `json:"anp_vacunacion"`

	GoMenarca   string `json:"go_menarca"`
	GoFum       string `json:"go_fum"`
	GoCiclo     string `json:"go_ciclo"`
	GoEmbarazos string `json:"go_embarazos"`
	GoPartos    string `json:"go_partos"`
	GoCesareas  string `json:"go_cesareas"`
	GoAbortos   string `json:"go_abortos"`

	AfDiabetes     bool   `json:"af_diabetes"`
	AfHta          bool   `json:"af_hta"`
	AfCancer       bool   `json:"af_cancer"`
	AfHereditarias string `json:"af_hereditarias"`
	AfOtros        string `json:"af_otros"`

	RsGeneral            string `json:"rs_general"`
	RsCardiovascular     string `json:"rs_cardiovascular"`
	RsRespiratorio       string `json:"rs_respiratorio"`
	RsDigestivo          string `json:"rs_digestivo"`
	RsGenitourinario     string `json:"rs_genitourinario"`
	RsNeurologico        string `json:"rs_neurologico"`
	RsMusculoesqueletico string `json:"rs_musculoesqueletico"`

	SvTa           string `json:"sv_ta"`
	SvFc           string `json:"sv_fc"`
	SvFr           string `json:"sv_fr"`
	SvTemp         string `json:"sv_temp"`
	SvPeso         string `json:"sv_peso"`
	SvTalla        string `json:"sv_talla"`
	SvImc          string `json:"sv_imc"`
	EfCabezaCuello string `json:"ef_cabeza_cuello"`
	EfTorax        string `json:"ef_torax"`
	EfAbdomen      string `json:"ef_abdomen"`
	EfExtremidades string `json:"ef_extremidades"`
	EfNeurologico  string `json:"ef_neurologico"`

	Estudios      string `json:"estudios"`
	Diagnosticos  string `json:"diagnosticos"`
	Plan          string `json:"plan"`
	Observaciones string `json:"observaciones"`
}

type RecordSummaryResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Diagnosticos string    `json:"diagnosticos"`
}

type RecordResponse struct {
	ID        uint       `json:"id"`
	PatientID uint       `json:"patient_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedBy *uuid.UUID `json:"updated_by"`

	MotivoConsulta   string `json:"motivo_consulta"`
	EnfermedadActual string `json:"enfermedad_actual"`

	ApDiabetes       bool   `json:"ap_diabetes"`
	ApHta            bool   `json:"ap_hta"`
	ApCardiovascular bool   `json:"ap_cardiovascular"`
	ApRespiratoria   bool   `json:"ap_respiratoria"`
	ApRenal          bool   `json:"ap_renal"`
	ApAlergias       string `json:"ap_alergias"`
	ApOtros          string `json:"ap_otros"`

	AnpAlimentacion    string `json:"anp_alimentacion"`
	AnpActividadFisica string `json:"anp_actividad_fisica"`
	AnpAlcohol         string `json:"anp_alcohol"`
	AnpTabaco          string `json:"anp_tabaco"`
	AnpDrogas          string `json:"anp_drogas"`
	AnpVacunacion      string `json:"anp_vacunacion"`

	GoMenarca   *int    `json:"go_menarca"`
	GoFum       *string `json:"go_fum"`
	GoCiclo     string  `json:"go_ciclo"`
	GoEmbarazos *int    `json:"go_embarazos"`
	GoPartos    *int    `json:"go_partos"`
	GoCesareas  *int    `json:"go_cesareas"`
	GoAbortos   *int    `json:"go_abortos"`

	AfDiabetes     bool   `json:"af_diabetes"`
	AfHta          bool   `json:"af_hta"`
	AfCancer       bool   `json:"af_cancer"`
	AfHereditarias string `json:"af_hereditarias"`
	AfOtros        string `json:"af_otros"`

	RsGeneral            string `json:"rs_general"`
	RsCardiovascular     string `json:"rs_cardiovascular"`
	RsRespiratorio       string `json:"rs_respiratorio"`
	RsDigestivo          string `json:"rs_digestivo"`
	RsGenitourinario     string `json:"rs_genitourinario"`
	RsNeurologico        string `json:"rs_neurologico"`
	RsMusculoesqueletico string `json:"rs_musculoesqueletico"`

	SvTa           string   `json:"sv_ta"`
	SvFc           string   `json:"sv_fc"`
	SvFr           string   `json:"sv_fr"`
	SvTemp         string   `json:"sv_temp"`
	SvPeso         *float64 `json:"sv_peso"`
	SvTalla        *float64 `json:"sv_talla"`
	SvImc          *float64 `json:"sv_imc"`
	EfCabezaCuello string   `json:"ef_cabeza_cuello"`
	EfTorax        string   `json:"ef_torax"`
	EfAbdomen      string   `json:"ef_abdomen"`
	EfExtremidades string   `json:"ef_extremidades"`
	EfNeurologico  string   `json:"ef_neurologico"`

	Estudios      string `json:"estudios"`
	Diagnosticos  string `json:"diagnosticos"`
	Plan          string `json:"plan"`
	Observaciones string `json:"observaciones"`
}
