package entity

import (
	"time"
)

// Sexo values accepted by the registry. The column is nullable; an unset sex
// is stored as NULL, never as an empty string.
const (
	SexoFemenino  = "Femenino"
	SexoMasculino = "Masculino"
	SexoOtro      = "Otro"
)

// Patient is one entry of the registry. Expediente is the user-assigned
// clinical file number and must be unique; the unique index is the backstop
// behind the usecase-level pre-insert check.
type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Expediente  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"expediente"`
	Nombre      string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Sexo        *string   `gorm:"type:varchar(20)" json:"sexo"`
	Edad        *int      `json:"edad"`
	EstadoCivil *string   `gorm:"type:varchar(100)" json:"estado_civil"`
	Ocupacion   *string   `gorm:"type:varchar(255)" json:"ocupacion"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Records []ClinicalRecord `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
