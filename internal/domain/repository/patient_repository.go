package repository

import (
	"context"

	"clinical-records-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// FindAll returns patients newest-first. A non-blank search narrows the
	// result to rows whose nombre or expediente contains the text,
	// case-insensitively.
	FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindByExpediente(ctx context.Context, db *gorm.DB, expediente string) (*entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
