package usecase

import (
	"context"
	"errors"
	"time"

	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/domain/repository"
	"clinical-records-api/internal/export"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoRecordsToExport = errors.New("patient has no clinical records")

const (
	contentTypeCSV = "text/csv; charset=utf-8"
	contentTypePDF = "application/pdf"
)

// ExportUsecase materializes downloadable documents. Every export re-fetches
// from storage, bypassing the query cache and whatever search filter was
// active in the listing.
type ExportUsecase interface {
	PatientsCSV(ctx context.Context) (*dto.ExportFile, error)
	PatientsPDF(ctx context.Context) (*dto.ExportFile, error)
	PatientPDF(ctx context.Context, patientID uint) (*dto.ExportFile, error)
	RecordPDF(ctx context.Context, patientID, recordID uint) (*dto.ExportFile, error)
	HistoryPDF(ctx context.Context, patientID uint) (*dto.ExportFile, error)
}

type exportUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	recordRepo  repository.ClinicalRecordRepository
	now         func() time.Time
}

func NewExportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.ClinicalRecordRepository,
) ExportUsecase {
	return &exportUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
		now:         time.Now,
	}
}

func (u *exportUsecase) PatientsCSV(ctx context.Context) (*dto.ExportFile, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db, "")
	if err != nil {
		u.log.Warnf("Failed to fetch patients for export: %+v", err)
		return nil, err
	}

	data, err := export.PatientsCSV(patients)
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		Name:        export.PatientsCSVFilename(u.now()),
		ContentType: contentTypeCSV,
		Data:        data,
	}, nil
}

func (u *exportUsecase) PatientsPDF(ctx context.Context) (*dto.ExportFile, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db, "")
	if err != nil {
		u.log.Warnf("Failed to fetch patients for export: %+v", err)
		return nil, err
	}

	data, err := export.PatientsPDF(patients)
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		Name:        export.PatientsPDFFilename(u.now()),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

func (u *exportUsecase) PatientPDF(ctx context.Context, patientID uint) (*dto.ExportFile, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	data, err := export.PatientPDF(patient)
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		Name:        export.PatientPDFFilename(patient.Expediente),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

// RecordPDF re-fetches the full record row and combines it with the
// patient's summary fields.
func (u *exportUsecase) RecordPDF(ctx context.Context, patientID, recordID uint) (*dto.ExportFile, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record: %+v", err)
		return nil, err
	}
	if record == nil || record.PatientID != patientID {
		return nil, ErrRecordNotFound
	}

	data, err := export.RecordPDF(patient, record)
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		Name:        export.RecordPDFFilename(patient.Expediente, record.ID),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

// HistoryPDF renders every consultation of the patient, newest first, one
// page each behind the cover page.
func (u *exportUsecase) HistoryPDF(ctx context.Context, patientID uint) (*dto.ExportFile, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindAllByPatient(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to fetch records for export: %+v", err)
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecordsToExport
	}

	data, err := export.HistoryPDF(patient, records)
	if err != nil {
		return nil, err
	}

	return &dto.ExportFile{
		Name:        export.HistoryPDFFilename(patient.Expediente),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}
