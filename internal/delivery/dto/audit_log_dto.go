package dto

import (
	"time"

	"clinical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

// AuditLogResponse carries one trail entry. UserID is null for writes that
// happened before the session user resolved.
type AuditLogResponse struct {
	ID        int64       `json:"id"`
	UserID    *uuid.UUID  `json:"user_id"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
