package usecase

import (
	"context"
	"testing"
	"time"

	"clinical-records-api/internal/cache"
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newPatientUsecase(patientRepo *MockPatientRepository) (PatientUsecase, *MockAuditService) {
	auditService := &MockAuditService{}
	u := NewPatientUsecase(nil, logrus.New(), patientRepo, auditService, cache.New(time.Minute))
	return u, auditService
}

func TestPatientUsecase_Create_NormalizesBlankOptionalFields(t *testing.T) {
	var created *entity.Patient
	mockRepo := &MockPatientRepository{
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
			patient.ID = 1
			created = patient
			return nil
		},
	}
	u, auditService := newPatientUsecase(mockRepo)

	patient, err := u.Create(context.Background(), &dto.SavePatientRequest{
		Expediente: "  EXP-001  ",
		Nombre:     "Ana López",
		Sexo:       "Femenino",
		Edad:       "",
		Ocupacion:  "   ",
	}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "EXP-001", patient.Expediente)
	assert.Equal(t, "Ana López", patient.Nombre)
	assert.Equal(t, "Femenino", *patient.Sexo)
	assert.Nil(t, patient.Edad)
	assert.Nil(t, patient.EstadoCivil)
	assert.Nil(t, patient.Ocupacion)
	assert.Len(t, auditService.Entries, 1)
	assert.Equal(t, entity.AuditActionPatientCreate, auditService.Entries[0].Action)
}

func TestPatientUsecase_Create_ParsesEdad(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	patient, err := u.Create(context.Background(), &dto.SavePatientRequest{
		Expediente: "EXP-002",
		Nombre:     "Luis Pérez",
		Edad:       "34",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 34, *patient.Edad)
}

func TestPatientUsecase_Create_RejectsInvalidEdad(t *testing.T) {
	mockRepo := &MockPatientRepository{}
	u, _ := newPatientUsecase(mockRepo)

	for _, edad := range []string{"abc", "-3", "4.5"} {
		_, err := u.Create(context.Background(), &dto.SavePatientRequest{
			Expediente: "EXP-003",
			Nombre:     "X",
			Edad:       edad,
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidEdad, "edad %q", edad)
	}
	assert.EqualValues(t, 0, mockRepo.CreateCallCount)
}

func TestPatientUsecase_Create_DuplicateExpedienteDoesNotInsert(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return &entity.Patient{ID: 7, Expediente: expediente}, nil
		},
	}
	u, auditService := newPatientUsecase(mockRepo)

	_, err := u.Create(context.Background(), &dto.SavePatientRequest{
		Expediente: "EXP-001",
		Nombre:     "Duplicada",
	}, nil)

	assert.ErrorIs(t, err, ErrExpedienteExists)
	assert.EqualValues(t, 0, mockRepo.CreateCallCount)
	assert.Empty(t, auditService.Entries)
}

func TestPatientUsecase_Create_DuplicateRaceSurfacesAsExpedienteExists(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_expediente"}
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	_, err := u.Create(context.Background(), &dto.SavePatientRequest{
		Expediente: "EXP-001",
		Nombre:     "Carrera",
	}, nil)

	assert.ErrorIs(t, err, ErrExpedienteExists)
}

func TestPatientUsecase_Update_SkipsDuplicateCheckWhenExpedienteUnchanged(t *testing.T) {
	findByExpedienteCalled := false
	mockRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Expediente: "EXP-001", Nombre: "Ana"}, nil
		},
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			findByExpedienteCalled = true
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
			return nil
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	patient, err := u.Update(context.Background(), 1, &dto.SavePatientRequest{
		Expediente: "EXP-001",
		Nombre:     "Ana María",
	}, nil)

	assert.NoError(t, err)
	assert.False(t, findByExpedienteCalled)
	assert.Equal(t, "Ana María", patient.Nombre)
}

func TestPatientUsecase_Update_ChecksDuplicateWhenExpedienteChanges(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Expediente: "EXP-001", Nombre: "Ana"}, nil
		},
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return &entity.Patient{ID: 2, Expediente: expediente}, nil
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	_, err := u.Update(context.Background(), 1, &dto.SavePatientRequest{
		Expediente: "EXP-002",
		Nombre:     "Ana",
	}, nil)

	assert.ErrorIs(t, err, ErrExpedienteExists)
}

func TestPatientUsecase_Delete_ForeignKeyViolationMeansHistory(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Expediente: "EXP-001"}, nil
		},
		DeleteFunc: func(ctx context.Context, db *gorm.DB, id uint) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_records"}
		},
	}
	u, auditService := newPatientUsecase(mockRepo)

	err := u.Delete(context.Background(), 1, nil)

	assert.ErrorIs(t, err, ErrPatientHasRecords)
	assert.Empty(t, auditService.Entries)
}

func TestPatientUsecase_Delete_MissingPatient(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	err := u.Delete(context.Background(), 99, nil)

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.EqualValues(t, 0, mockRepo.DeleteCallCount)
}

func TestPatientUsecase_List_CachesUntilInvalidated(t *testing.T) {
	mockRepo := &MockPatientRepository{
		FindAllFunc: func(ctx context.Context, db *gorm.DB, search string) ([]entity.Patient, error) {
			return []entity.Patient{{ID: 1, Expediente: "EXP-001"}}, nil
		},
		FindByExpedienteFunc: func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u, _ := newPatientUsecase(mockRepo)

	_, err := u.List(context.Background(), "")
	assert.NoError(t, err)
	_, err = u.List(context.Background(), "")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, mockRepo.FindAllCallCount)

	// A mutation invalidates every listing, so the next read refetches
	_, err = u.Create(context.Background(), &dto.SavePatientRequest{Expediente: "EXP-002", Nombre: "Nueva"}, nil)
	assert.NoError(t, err)

	_, err = u.List(context.Background(), "")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, mockRepo.FindAllCallCount)
}
