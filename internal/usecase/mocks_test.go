package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"clinical-records-api/internal/domain/entity"
	"clinical-records-api/internal/domain/repository"
	"clinical-records-api/internal/service"

	"gorm.io/gorm"
)

// Compile-time checks that the mocks satisfy the repository contracts
var _ repository.PatientRepository = (*MockPatientRepository)(nil)
var _ repository.ClinicalRecordRepository = (*MockClinicalRecordRepository)(nil)
var _ service.AuditService = (*MockAuditService)(nil)
var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

// MockPatientRepository is a function-field mock of PatientRepository.
type MockPatientRepository struct {
	CreateFunc           func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindAllFunc          func(ctx context.Context, db *gorm.DB, search string) ([]entity.Patient, error)
	FindByIDFunc         func(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindByExpedienteFunc func(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error)
	UpdateFunc           func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	DeleteFunc           func(ctx context.Context, db *gorm.DB, id uint) error

	CreateCallCount  int32
	FindAllCallCount int32
	DeleteCallCount  int32
}

func (m *MockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Patient, error) {
	atomic.AddInt32(&m.FindAllCallCount, 1)
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db, search)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindByExpediente(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error) {
	if m.FindByExpedienteFunc != nil {
		return m.FindByExpedienteFunc(ctx, db, expediente)
	}
	return nil, errors.New("FindByExpedienteFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, db, id)
	}
	return nil
}

// MockClinicalRecordRepository is a function-field mock of ClinicalRecordRepository.
type MockClinicalRecordRepository struct {
	CreateFunc                 func(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error
	FindByIDFunc               func(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error)
	FindSummariesByPatientFunc func(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error)
	FindAllByPatientFunc       func(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.ClinicalRecord, error)
	UpdateFunc                 func(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error
	DeleteFunc                 func(ctx context.Context, db *gorm.DB, id uint) error

	CreateCallCount                 int32
	FindSummariesByPatientCallCount int32
}

func (m *MockClinicalRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, record)
	}
	return nil
}

func (m *MockClinicalRecordRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockClinicalRecordRepository) FindSummariesByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error) {
	atomic.AddInt32(&m.FindSummariesByPatientCallCount, 1)
	if m.FindSummariesByPatientFunc != nil {
		return m.FindSummariesByPatientFunc(ctx, db, patientID)
	}
	return nil, nil
}

func (m *MockClinicalRecordRepository) FindAllByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.ClinicalRecord, error) {
	if m.FindAllByPatientFunc != nil {
		return m.FindAllByPatientFunc(ctx, db, patientID)
	}
	return nil, nil
}

func (m *MockClinicalRecordRepository) Update(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, record)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockClinicalRecordRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, db, id)
	}
	return nil
}

// MockAuditLogRepository is a function-field mock of AuditLogRepository.
type MockAuditLogRepository struct {
	CreateFunc  func(db *gorm.DB, log *entity.AuditLog) error
	FindAllFunc func(db *gorm.DB) ([]entity.AuditLog, error)
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, log)
	}
	return nil
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

// MockAuditService records audit entries instead of writing them.
type MockAuditService struct {
	Entries []service.Entry
}

func (m *MockAuditService) Log(ctx context.Context, db *gorm.DB, e service.Entry) error {
	m.Entries = append(m.Entries, e)
	return nil
}
