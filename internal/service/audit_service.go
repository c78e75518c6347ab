package service

import (
	"context"

	"clinical-records-api/internal/domain/entity"
	"clinical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Entry describes one mutation for the audit trail. OldValue/NewValue are
// serialized into the metadata column; either may be nil.
type Entry struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	OldValue interface{}
	NewValue interface{}
}

type AuditService interface {
	Log(ctx context.Context, db *gorm.DB, e Entry) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// Log records an audit entry. Failures are logged and returned but callers
// treat the trail as best-effort: a mutation is not rolled back because its
// audit write failed.
func (s *auditService) Log(ctx context.Context, db *gorm.DB, e Entry) error {
	metadata := entity.JSON{
		"entity":    e.Entity,
		"entity_id": e.EntityID,
		"old_value": e.OldValue,
		"new_value": e.NewValue,
	}

	auditLog := &entity.AuditLog{
		UserID:   e.UserID,
		Action:   e.Action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
