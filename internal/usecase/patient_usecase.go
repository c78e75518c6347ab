package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"clinical-records-api/internal/cache"
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
	"clinical-records-api/internal/domain/repository"
	"clinical-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrExpedienteExists  = errors.New("a patient with this expediente already exists")
	ErrPatientHasRecords = errors.New("cannot delete: patient has clinical history")
	ErrInvalidEdad       = errors.New("edad must be a non-negative integer")
)

// patientCachePrefix keys every registry listing; mutations invalidate the
// whole prefix, search included (coarse invalidation, no row patching).
const patientCachePrefix = "patients:"

type PatientUsecase interface {
	List(ctx context.Context, search string) ([]entity.Patient, error)
	Get(ctx context.Context, id uint) (*entity.Patient, error)
	Create(ctx context.Context, req *dto.SavePatientRequest, userID *uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, id uint, req *dto.SavePatientRequest, userID *uuid.UUID) (*entity.Patient, error)
	Delete(ctx context.Context, id uint, userID *uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	queryCache   *cache.QueryCache
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	queryCache *cache.QueryCache,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
		queryCache:   queryCache,
	}
}

// List serves the registry through the query cache. An empty result is a
// valid listing, not an error.
func (u *patientUsecase) List(ctx context.Context, search string) ([]entity.Patient, error) {
	search = strings.TrimSpace(search)
	key := patientCachePrefix + search

	v, err := u.queryCache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return u.patientRepo.FindAll(ctx, u.db, search)
	})
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return v.([]entity.Patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uint) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

// Create inserts a patient after the pre-insert expediente check. The unique
// index backs the same invariant against concurrent writers, so a lost race
// still surfaces as ErrExpedienteExists rather than half-applied state.
func (u *patientUsecase) Create(ctx context.Context, req *dto.SavePatientRequest, userID *uuid.UUID) (*entity.Patient, error) {
	patient, err := u.normalize(req)
	if err != nil {
		return nil, err
	}

	existing, err := u.patientRepo.FindByExpediente(ctx, u.db, patient.Expediente)
	if err != nil {
		u.log.Warnf("Failed to check expediente: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrExpedienteExists
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		if isDuplicateKeyError(err, "expediente") {
			return nil, ErrExpedienteExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.audit(ctx, userID, entity.AuditActionPatientCreate, patient.ID, nil, patient)
	u.queryCache.Invalidate(patientCachePrefix)

	return patient, nil
}

// Update edits a patient in place. The duplicate check only runs when the
// expediente actually changed.
func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.SavePatientRequest, userID *uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	normalized, err := u.normalize(req)
	if err != nil {
		return nil, err
	}

	if normalized.Expediente != patient.Expediente {
		existing, err := u.patientRepo.FindByExpediente(ctx, u.db, normalized.Expediente)
		if err != nil {
			u.log.Warnf("Failed to check expediente: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrExpedienteExists
		}
	}

	oldValue := *patient
	patient.Expediente = normalized.Expediente
	patient.Nombre = normalized.Nombre
	patient.Sexo = normalized.Sexo
	patient.Edad = normalized.Edad
	patient.EstadoCivil = normalized.EstadoCivil
	patient.Ocupacion = normalized.Ocupacion

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		if isDuplicateKeyError(err, "expediente") {
			return nil, ErrExpedienteExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.audit(ctx, userID, entity.AuditActionPatientUpdate, patient.ID, &oldValue, patient)
	u.queryCache.Invalidate(patientCachePrefix)

	return patient, nil
}

// Delete removes a patient without records. The database refuses when visits
// exist; the foreign key violation surfaces as the domain error instead of
// the raw constraint message.
func (u *patientUsecase) Delete(ctx context.Context, id uint, userID *uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, u.db, id); err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasRecords
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.audit(ctx, userID, entity.AuditActionPatientDelete, id, patient, nil)
	u.queryCache.Invalidate(patientCachePrefix)

	return nil
}

// normalize trims the identifying fields and coerces the optional ones:
// blank sexo/edad/estado_civil/ocupacion become NULL, never empty strings.
func (u *patientUsecase) normalize(req *dto.SavePatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{
		Expediente: strings.TrimSpace(req.Expediente),
		Nombre:     strings.TrimSpace(req.Nombre),
	}

	if sexo := strings.TrimSpace(req.Sexo); sexo != "" {
		patient.Sexo = &sexo
	}
	if estadoCivil := strings.TrimSpace(req.EstadoCivil); estadoCivil != "" {
		patient.EstadoCivil = &estadoCivil
	}
	if ocupacion := strings.TrimSpace(req.Ocupacion); ocupacion != "" {
		patient.Ocupacion = &ocupacion
	}
	if edad := strings.TrimSpace(req.Edad); edad != "" {
		n, err := strconv.Atoi(edad)
		if err != nil || n < 0 {
			return nil, ErrInvalidEdad
		}
		patient.Edad = &n
	}

	return patient, nil
}

func (u *patientUsecase) audit(ctx context.Context, userID *uuid.UUID, action string, patientID uint, oldValue, newValue interface{}) {
	if err := u.auditService.Log(ctx, u.db, service.Entry{
		UserID:   userID,
		Action:   action,
		Entity:   "patient",
		EntityID: fmt.Sprintf("%d", patientID),
		OldValue: oldValue,
		NewValue: newValue,
	}); err != nil {
		u.log.Warnf("Failed to audit %s: %+v", action, err)
	}
}
