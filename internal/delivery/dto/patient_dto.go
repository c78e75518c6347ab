package dto

import "time"

// SavePatientRequest carries the registry form for both creation and edits.
// Edad arrives as a string so a blank input can be told apart from zero; it
// is normalized to NULL or a non-negative integer at the usecase boundary.
type SavePatientRequest struct {
	Expediente  string `json:"expediente" validate:"required"`
	Nombre      string `json:"nombre" validate:"required"`
	Sexo        string `json:"sexo" validate:"omitempty,oneof=Femenino Masculino Otro"`
	Edad        string `json:"edad" validate:"omitempty"`
	EstadoCivil string `json:"estado_civil" validate:"omitempty"`
	Ocupacion   string `json:"ocupacion" validate:"omitempty"`
}

type PatientResponse struct {
	ID          uint      `json:"id"`
	Expediente  string    `json:"expediente"`
	Nombre      string    `json:"nombre"`
	Sexo        *string   `json:"sexo"`
	Edad        *int      `json:"edad"`
	EstadoCivil *string   `json:"estado_civil"`
	Ocupacion   *string   `json:"ocupacion"`
	CreatedAt   time.Time `json:"created_at"`
}
