package repository

import (
	"context"
	"errors"

	"clinical-records-api/internal/domain/entity"
	domainRepo "clinical-records-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicalRecordRepository struct{}

func NewClinicalRecordRepository() domainRepo.ClinicalRecordRepository {
	return &clinicalRecordRepository{}
}

func (r *clinicalRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *clinicalRecordRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ClinicalRecord, error) {
	var record entity.ClinicalRecord
	err := db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *clinicalRecordRepository) FindSummariesByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.RecordSummary, error) {
	var summaries []entity.RecordSummary
	err := db.WithContext(ctx).
		Model(&entity.ClinicalRecord{}).
		Select("id", "created_at", "diagnosticos").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *clinicalRecordRepository) FindAllByPatient(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.ClinicalRecord, error) {
	var records []entity.ClinicalRecord
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *clinicalRecordRepository) Update(ctx context.Context, db *gorm.DB, record *entity.ClinicalRecord) error {
	return db.WithContext(ctx).Save(record).Error
}

func (r *clinicalRecordRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.ClinicalRecord{}, id).Error
}
