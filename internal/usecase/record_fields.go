package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
)

// ErrInvalidFieldValue wraps coercion failures at the normalization boundary;
// the field name rides along in the wrapped message.
var ErrInvalidFieldValue = errors.New("invalid field value")

const isoDateLayout = "2006-01-02"

// nullableInt coerces a numeric form field: blank becomes NULL, anything else
// must parse as an integer.
func nullableInt(field, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	return &n, nil
}

func nullableFloat(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	return &f, nil
}

// nullableDate coerces a date form field: blank becomes NULL, anything else
// must be an ISO calendar date and passes through as the string it arrived as.
func nullableDate(field, value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(isoDateLayout, value); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	return &value, nil
}

// computeIMC derives body-mass index from weight and height, rounded to two
// decimals. Both must be present and positive, otherwise the result is unset.
func computeIMC(peso, talla *float64) *float64 {
	if peso == nil || talla == nil || *peso <= 0 || *talla <= 0 {
		return nil
	}
	imc := math.Round(*peso/(*talla**talla)*100) / 100
	return &imc
}

// applyRecordRequest writes every form field onto the record, coercing the
// numeric and date groups and re-deriving sv_imc. Existing identity fields
// (ID, PatientID, CreatedAt) are untouched, so an edit keeps its row.
func applyRecordRequest(rec *entity.ClinicalRecord, req *dto.SaveRecordRequest) error {
	rec.MotivoConsulta = req.MotivoConsulta
	rec.EnfermedadActual = req.EnfermedadActual

	rec.ApDiabetes = req.ApDiabetes
	rec.ApHta = req.ApHta
	rec.ApCardiovascular = req.ApCardiovascular
	rec.ApRespiratoria = req.ApRespiratoria
	rec.ApRenal = req.ApRenal
	rec.ApAlergias = req.ApAlergias
	rec.ApOtros = req.ApOtros

	rec.AnpAlimentacion = req.AnpAlimentacion
	rec.AnpActividadFisica = req.AnpActividadFisica
	rec.AnpAlcohol = req.AnpAlcohol
	rec.AnpTabaco = req.AnpTabaco
	rec.AnpDrogas = req.AnpDrogas
	rec.AnpVacunacion = req.AnpVacunacion

	var err error
	if rec.GoMenarca, err = nullableInt("go_menarca", req.GoMenarca); err != nil {
		return err
	}
	if rec.GoFum, err = nullableDate("go_fum", req.GoFum); err != nil {
		return err
	}
	rec.GoCiclo = req.GoCiclo
	if rec.GoEmbarazos, err = nullableInt("go_embarazos", req.GoEmbarazos); err != nil {
		return err
	}
	if rec.GoPartos, err = nullableInt("go_partos", req.GoPartos); err != nil {
		return err
	}
	if rec.GoCesareas, err = nullableInt("go_cesareas", req.GoCesareas); err != nil {
		return err
	}
	if rec.GoAbortos, err = nullableInt("go_abortos", req.GoAbortos); err != nil {
		return err
	}

	rec.AfDiabetes = req.AfDiabetes
	rec.AfHta = req.AfHta
	rec.AfCancer = req.AfCancer
	rec.AfHereditarias = req.AfHereditarias
	rec.AfOtros = req.AfOtros

	rec.RsGeneral = req.RsGeneral
	rec.RsCardiovascular = req.RsCardiovascular
	rec.RsRespiratorio = req.RsRespiratorio
	rec.RsDigestivo = req.RsDigestivo
	rec.RsGenitourinario = req.RsGenitourinario
	rec.RsNeurologico = req.RsNeurologico
	rec.RsMusculoesqueletico = req.RsMusculoesqueletico

	rec.SvTa = req.SvTa
	rec.SvFc = req.SvFc
	rec.SvFr = req.SvFr
	rec.SvTemp = req.SvTemp
	if rec.SvPeso, err = nullableFloat("sv_peso", req.SvPeso); err != nil {
		return err
	}
	if rec.SvTalla, err = nullableFloat("sv_talla", req.SvTalla); err != nil {
		return err
	}
	// Derived, never trusted from the client.
	rec.SvImc = computeIMC(rec.SvPeso, rec.SvTalla)

	rec.EfCabezaCuello = req.EfCabezaCuello
	rec.EfTorax = req.EfTorax
	rec.EfAbdomen = req.EfAbdomen
	rec.EfExtremidades = req.EfExtremidades
	rec.EfNeurologico = req.EfNeurologico

	rec.Estudios = req.Estudios
	rec.Diagnosticos = req.Diagnosticos
	rec.Plan = req.Plan
	rec.Observaciones = req.Observaciones

	return nil
}
