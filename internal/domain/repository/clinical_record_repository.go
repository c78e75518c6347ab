package repository

import (
	"context"

	"clinical-records-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicalRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error)
	// FindSummariesByPatient returns the id/created_at/diagnosticos projection
	// for a patient's history listing, newest-first.
	FindSummariesByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error)
	// FindAllByPatient returns full rows, newest-first. Used by the history
	// export, which needs every section of every consultation.
	FindAllByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.ClinicalRecord, error)
	Update(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
