package converter

import (
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
)

// RecordToResponse converts a ClinicalRecord entity to its response DTO
func RecordToResponse(r *entity.ClinicalRecord) *dto.RecordResponse {
	if r == nil {
		return nil
	}

	return &dto.RecordResponse{
		ID:        r.ID,
		PatientID: r.PatientID,
		CreatedAt: r.CreatedAt,
		UpdatedBy: r.UpdatedBy,

		MotivoConsulta:   r.MotivoConsulta,
		EnfermedadActual: r.EnfermedadActual,

		ApDiabetes:       r.ApDiabetes,
		ApHta:            r.ApHta,
		ApCardiovascular: r.ApCardiovascular,
		ApRespiratoria:   r.ApRespiratoria,
		ApRenal:          r.ApRenal,
		ApAlergias:       r.ApAlergias,
		ApOtros:          r.ApOtros,

		AnpAlimentacion:    r.AnpAlimentacion,
		AnpActividadFisica: r.AnpActividadFisica,
		AnpAlcohol:         r.AnpAlcohol,
		AnpTabaco:          r.AnpTabaco,
		AnpDrogas:          r.AnpDrogas,
		AnpVacunacion:      r.AnpVacunacion,

		GoMenarca:   r.GoMenarca,
		GoFum:       r.GoFum,
		GoCiclo:     r.GoCiclo,
		GoEmbarazos: r.GoEmbarazos,
		GoPartos:    r.GoPartos,
		GoCesareas:  r.GoCesareas,
		GoAbortos:   r.GoAbortos,

		AfDiabetes:     r.AfDiabetes,
		AfHta:          r.AfHta,
		AfCancer:       r.AfCancer,
		AfHereditarias: r.AfHereditarias,
		AfOtros:        r.AfOtros,

		RsGeneral:            r.RsGeneral,
		RsCardiovascular:     r.RsCardiovascular,
		RsRespiratorio:       r.RsRespiratorio,
		RsDigestivo:          r.RsDigestivo,
		RsGenitourinario:     r.RsGenitourinario,
		RsNeurologico:        r.RsNeurologico,
		RsMusculoesqueletico: r.RsMusculoesqueletico,

		SvTa:           r.SvTa,
		SvFc:           r.SvFc,
		SvFr:           r.SvFr,
		SvTemp:         r.SvTemp,
		SvPeso:         r.SvPeso,
		SvTalla:        r.SvTalla,
		SvImc:          r.SvImc,
		EfCabezaCuello: r.EfCabezaCuello,
		EfTorax:        r.EfTorax,
		EfAbdomen:      r.EfAbdomen,
		EfExtremidades: r.EfExtremidades,
		EfNeurologico:  r.EfNeurologico,

		Estudios:      r.Estudios,
		Diagnosticos:  r.Diagnosticos,
		Plan:          r.Plan,
		Observaciones: r.Observaciones,
	}
}

// RecordSummariesToResponse converts history listing projections
func RecordSummariesToResponse(summaries []entity.RecordSummary) []dto.RecordSummaryResponse {
	responses := make([]dto.RecordSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, dto.RecordSummaryResponse{
			ID:           s.ID,
			CreatedAt:    s.CreatedAt,
			Diagnosticos: s.Diagnosticos,
		})
	}
	return responses
}
