package usecase

import (
	"context"
	"testing"
	"time"

	"clinical-records-api/internal/cache"
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRecordUsecase(recordRepo *MockClinicalRecordRepository, patientRepo *MockPatientRepository) (ClinicalRecordUsecase, *MockAuditService) {
	auditService := &MockAuditService{}
	u := NewClinicalRecordUsecase(nil, logrus.New(), recordRepo, patientRepo, auditService, cache.New(time.Minute))
	return u, auditService
}

func existingPatientRepo() *MockPatientRepository {
	return &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Expediente: "EXP-001", Nombre: "Ana"}, nil
		},
	}
}

func TestRecordUsecase_Create_DerivesIMC(t *testing.T) {
	var created *entity.ClinicalRecord
	mockRecords := &MockClinicalRecordRepository{
		CreateFunc: func(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
			record.ID = 10
			created = record
			return nil
		},
	}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	record, err := u.Create(context.Background(), 1, &dto.SaveRecordRequest{
		MotivoConsulta: "Control",
		SvPeso:         "70",
		SvTalla:        "1.75",
		SvImc:          "99", // client value is ignored, the server derives it
	}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, 70.0, *record.SvPeso)
	assert.Equal(t, 1.75, *record.SvTalla)
	assert.Equal(t, 22.86, *record.SvImc)
}

func TestRecordUsecase_Create_BlankNumericsBecomeNull(t *testing.T) {
	mockRecords := &MockClinicalRecordRepository{}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	record, err := u.Create(context.Background(), 1, &dto.SaveRecordRequest{
		MotivoConsulta: "Control",
		GoMenarca:      "",
		GoEmbarazos:    "  ",
		SvPeso:         "",
	}, nil)

	assert.NoError(t, err)
	assert.Nil(t, record.GoMenarca)
	assert.Nil(t, record.GoEmbarazos)
	assert.Nil(t, record.SvPeso)
	assert.Nil(t, record.SvImc)
	assert.Nil(t, record.GoFum)
}

func TestRecordUsecase_Create_RejectsBadNumericAndDate(t *testing.T) {
	mockRecords := &MockClinicalRecordRepository{}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	_, err := u.Create(context.Background(), 1, &dto.SaveRecordRequest{GoMenarca: "doce"}, nil)
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = u.Create(context.Background(), 1, &dto.SaveRecordRequest{GoFum: "12/05/2024"}, nil)
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	assert.EqualValues(t, 0, mockRecords.CreateCallCount)
}

func TestRecordUsecase_Create_MissingPatient(t *testing.T) {
	mockPatients := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u, _ := newRecordUsecase(&MockClinicalRecordRepository{}, mockPatients)

	_, err := u.Create(context.Background(), 99, &dto.SaveRecordRequest{}, nil)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestRecordUsecase_Update_KeepsIdentityAndStampsUpdatedBy(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mockRecords := &MockClinicalRecordRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error) {
			return &entity.ClinicalRecord{ID: id, PatientID: 1, CreatedAt: createdAt, MotivoConsulta: "Inicial"}, nil
		},
		UpdateFunc: func(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
			return nil
		},
	}
	u, auditService := newRecordUsecase(mockRecords, existingPatientRepo())

	userID := uuid.New()
	record, err := u.Update(context.Background(), 1, 10, &dto.SaveRecordRequest{
		MotivoConsulta: "Seguimiento",
	}, &userID)

	assert.NoError(t, err)
	assert.EqualValues(t, 10, record.ID)
	assert.EqualValues(t, 1, record.PatientID)
	assert.Equal(t, createdAt, record.CreatedAt)
	assert.Equal(t, "Seguimiento", record.MotivoConsulta)
	assert.Equal(t, userID, *record.UpdatedBy)
	assert.Len(t, auditService.Entries, 1)
	assert.Equal(t, entity.AuditActionRecordUpdate, auditService.Entries[0].Action)
}

func TestRecordUsecase_Get_WrongPatientIsNotFound(t *testing.T) {
	mockRecords := &MockClinicalRecordRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error) {
			return &entity.ClinicalRecord{ID: id, PatientID: 2}, nil
		},
	}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	_, err := u.Get(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordUsecase_ListByPatient_CachesPerPatient(t *testing.T) {
	mockRecords := &MockClinicalRecordRepository{
		FindSummariesByPatientFunc: func(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error) {
			return []entity.RecordSummary{{ID: 10}}, nil
		},
	}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	_, err := u.ListByPatient(context.Background(), 1)
	assert.NoError(t, err)
	_, err = u.ListByPatient(context.Background(), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, mockRecords.FindSummariesByPatientCallCount)

	// Another patient's history is a separate cache key
	_, err = u.ListByPatient(context.Background(), 2)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, mockRecords.FindSummariesByPatientCallCount)
}

func TestRecordUsecase_Delete_InvalidatesHistoryListing(t *testing.T) {
	mockRecords := &MockClinicalRecordRepository{
		FindByIDFunc: func(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error) {
			return &entity.ClinicalRecord{ID: id, PatientID: 1}, nil
		},
		FindSummariesByPatientFunc: func(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error) {
			return nil, nil
		},
	}
	u, _ := newRecordUsecase(mockRecords, existingPatientRepo())

	_, err := u.ListByPatient(context.Background(), 1)
	assert.NoError(t, err)

	err = u.Delete(context.Background(), 1, 10, nil)
	assert.NoError(t, err)

	_, err = u.ListByPatient(context.Background(), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, mockRecords.FindSummariesByPatientCallCount)
}
