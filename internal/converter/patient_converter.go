package converter

import (
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          p.ID,
		Expediente:  p.Expediente,
		Nombre:      p.Nombre,
		Sexo:        p.Sexo,
		Edad:        p.Edad,
		EstadoCivil: p.EstadoCivil,
		Ocupacion:   p.Ocupacion,
		CreatedAt:   p.CreatedAt,
	}
}

// PatientsToResponse converts a slice of Patient entities
func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
