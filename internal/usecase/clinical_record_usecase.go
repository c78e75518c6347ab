package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinical-records-api/internal/cache"
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/entity"
	"clinical-records-api/internal/domain/repository"
	"clinical-records-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("clinical record not found")

type ClinicalRecordUsecase interface {
	ListByPatient(ctx context.Context, patientID uint) ([]entity.RecordSummary, error)
	Get(ctx context.Context, patientID, recordID uint) (*entity.ClinicalRecord, error)
	Create(ctx context.Context, patientID uint, req *dto.SaveRecordRequest, userID *uuid.UUID) (*entity.ClinicalRecord, error)
	Update(ctx context.Context, patientID, recordID uint, req *dto.SaveRecordRequest, userID *uuid.UUID) (*entity.ClinicalRecord, error)
	Delete(ctx context.Context, patientID, recordID uint, userID *uuid.UUID) error
}

type clinicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.ClinicalRecordRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	queryCache   *cache.QueryCache
}

func NewClinicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.ClinicalRecordRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	queryCache *cache.QueryCache,
) ClinicalRecordUsecase {
	return &clinicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		queryCache:   queryCache,
	}
}

// recordCachePrefix ends with a colon so invalidating patient 4 never touches
// patient 42.
func recordCachePrefix(patientID uint) string {
	return fmt.Sprintf("records:%d:", patientID)
}

func (u *clinicalRecordUsecase) ListByPatient(ctx context.Context, patientID uint) ([]entity.RecordSummary, error) {
	key := recordCachePrefix(patientID) + "summaries"

	v, err := u.queryCache.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return u.recordRepo.FindSummariesByPatient(ctx, u.db, patientID)
	})
	if err != nil {
		u.log.Warnf("Failed to list records: %+v", err)
		return nil, err
	}
	return v.([]entity.RecordSummary), nil
}

func (u *clinicalRecordUsecase) Get(ctx context.Context, patientID, recordID uint) (*entity.ClinicalRecord, error) {
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record: %+v", err)
		return nil, err
	}
	if record == nil || record.PatientID != patientID {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

func (u *clinicalRecordUsecase) Create(ctx context.Context, patientID uint, req *dto.SaveRecordRequest, userID *uuid.UUID) (*entity.ClinicalRecord, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.ClinicalRecord{
		PatientID: patientID,
		UpdatedBy: userID,
	}
	if err := applyRecordRequest(record, req); err != nil {
		return nil, err
	}

	if err := u.recordRepo.Create(ctx, u.db, record); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create record: %+v", err)
		return nil, err
	}

	u.audit(ctx, userID, entity.AuditActionRecordCreate, record.ID, nil, record)
	u.queryCache.Invalidate(recordCachePrefix(patientID))

	return record, nil
}

// Update edits the existing row in place: the record keeps its id and
// created_at, every form field is overwritten, and updated_by is stamped
// with the session user.
func (u *clinicalRecordUsecase) Update(ctx context.Context, patientID, recordID uint, req *dto.SaveRecordRequest, userID *uuid.UUID) (*entity.ClinicalRecord, error) {
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record: %+v", err)
		return nil, err
	}
	if record == nil || record.PatientID != patientID {
		return nil, ErrRecordNotFound
	}

	oldValue := *record
	if err := applyRecordRequest(record, req); err != nil {
		return nil, err
	}
	record.UpdatedBy = userID

	if err := u.recordRepo.Update(ctx, u.db, record); err != nil {
		u.log.Warnf("Failed to update record: %+v", err)
		return nil, err
	}

	u.audit(ctx, userID, entity.AuditActionRecordUpdate, record.ID, &oldValue, record)
	u.queryCache.Invalidate(recordCachePrefix(patientID))

	return record, nil
}

func (u *clinicalRecordUsecase) Delete(ctx context.Context, patientID, recordID uint, userID *uuid.UUID) error {
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record: %+v", err)
		return err
	}
	if record == nil || record.PatientID != patientID {
		return ErrRecordNotFound
	}

	if err := u.recordRepo.Delete(ctx, u.db, recordID); err != nil {
		u.log.Warnf("Failed to delete record: %+v", err)
		return err
	}

	u.audit(ctx, userID, entity.AuditActionRecordDelete, recordID, record, nil)
	u.queryCache.Invalidate(recordCachePrefix(patientID))

	return nil
}

func (u *clinicalRecordUsecase) audit(ctx context.Context, userID *uuid.UUID, action string, recordID uint, oldValue, newValue interface{}) {
	if err := u.auditService.Log(ctx, u.db, service.Entry{
		UserID:   userID,
		Action:   action,
		Entity:   "clinical_record",
		EntityID: fmt.Sprintf("%d", recordID),
		OldValue: oldValue,
		NewValue: newValue,
	}); err != nil {
		u.log.Warnf("Failed to audit %s: %+v", action, err)
	}
}
