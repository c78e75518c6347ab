package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClinicalRecord is one consultation tied to exactly one patient. Column
// names keep the Spanish terms used in the clinic's paper forms.
//
// Field categories matter for normalization: free-text columns store blank
// strings as-is, numeric and date columns store blank input as NULL. SvImc is
// derived from SvPeso and SvTalla on every save and never trusted from the
// client.
type ClinicalRecord struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	// Motivo de consulta / enfermedad actual
	MotivoConsulta   string `gorm:"type:text" json:"motivo_consulta"`
	EnfermedadActual string `gorm:"type:text" json:"enfermedad_actual"`

	// Antecedentes personales patologicos
	ApDiabetes       bool   `gorm:"not null;default:false" json:"ap_diabetes"`
	ApHta            bool   `gorm:"not null;default:false" json:"ap_hta"`
	ApCardiovascular bool   `gorm:"not null;default:false" json:"ap_cardiovascular"`
	ApRespiratoria   bool   `gorm:"not null;default:false" json:"ap_respiratoria"`
	ApRenal          bool   `gorm:"not null;default:false" json:"ap_renal"`
	ApAlergias       string `gorm:"type:text" json:"ap_alergias"`
	ApOtros          string `gorm:"type:text" json:"ap_otros"`

	// Antecedentes personales no patologicos
	AnpAlimentacion    string `gorm:"type:text" json:"anp_alimentacion"`
	AnpActividadFisica string `gorm:"type:text" json:"anp_actividad_fisica"`
	AnpAlcohol         string `gorm:"type:text" json:"anp_alcohol"`
	AnpTabaco          string `gorm:"type:text" json:"anp_tabaco"`
	AnpDrogas          string `gorm:"type:text" json:"anp_drogas"`
	AnpVacunacion      string `gorm:"type:text" json:"anp_vacunacion"`

	// Gineco-obstetricos
	GoMenarca   *int    `json:"go_menarca"`
	GoFum       *string `gorm:"type:date" json:"go_fum"`
	GoCiclo     string  `gorm:"type:varchar(100)" json:"go_ciclo"`
	GoEmbarazos *int    `json:"go_embarazos"`
	GoPartos    *int    `json:"go_partos"`
	GoCesareas  *int    `json:"go_cesareas"`
	GoAbortos   *int    `json:"go_abortos"`

	// Antecedentes familiares
	AfDiabetes     bool   `gorm:"not null;default:false" json:"af_diabetes"`
	AfHta          bool   `gorm:"not null;default:false" json:"af_hta"`
	AfCancer       bool   `gorm:"not null;default:false" json:"af_cancer"`
	AfHereditarias string `gorm:"type:text" json:"af_hereditarias"`
	AfOtros        string `gorm:"type:text" json:"af_otros"`

	// Revision por aparatos y sistemas
	RsGeneral            string `gorm:"type:text" json:"rs_general"`
	RsCardiovascular     string `gorm:"type:text" json:"rs_cardiovascular"`
	RsRespiratorio       string `gorm:"type:text" json:"rs_respiratorio"`
	RsDigestivo          string `gorm:"type:text" json:"rs_digestivo"`
	RsGenitourinario     string `gorm:"type:text" json:"rs_genitourinario"`
	RsNeurologico        string `gorm:"type:text" json:"rs_neurologico"`
	RsMusculoesqueletico string `gorm:"type:text" json:"rs_musculoesqueletico"`

	// Signos vitales y exploracion fisica
	SvTa           string   `gorm:"type:varchar(50)" json:"sv_ta"`
	SvFc           string   `gorm:"type:varchar(50)" json:"sv_fc"`
	SvFr           string   `gorm:"type:varchar(50)" json:"sv_fr"`
	SvTemp         string   `gorm:"type:varchar(50)" json:"sv_temp"`
	SvPeso         *float64 `json:"sv_peso"`
	SvTalla        *float64 `json:"sv_talla"`
	SvImc          *float64 `json:"sv_imc"`
	EfCabezaCuello string   `gorm:"type:text" json:"ef_cabeza_cuello"`
	EfTorax        string   `gorm:"type:text" json:"ef_torax"`
	EfAbdomen      string   `gorm:"type:text" json:"ef_abdomen"`
	EfExtremidades string   `gorm:"type:text" json:"ef_extremidades"`
	EfNeurologico  string   `gorm:"type:text" json:"ef_neurologico"`

	// Estudios, diagnostico, plan
	Estudios      string `gorm:"type:text" json:"estudios"`
	Diagnosticos  string `gorm:"type:text" json:"diagnosticos"`
	Plan          string `gorm:"type:text" json:"plan"`
	Observaciones string `gorm:"type:text" json:"observaciones"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

func (ClinicalRecord) TableName() string {
	return "clinical_records"
}

// RecordSummary is the projection shown in a patient's history listing.
type RecordSummary struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Diagnosticos string    `json:"diagnosticos"`
}
