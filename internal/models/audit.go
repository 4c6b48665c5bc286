package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions.
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditLog is an append-only record of a single logical mutation. Rows are
// never updated or deleted by normal flow and outlive their subject entity.
// Payload is a best-effort JSON snapshot of the resulting (or deleted) row.
type AuditLog struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Entity    string    `gorm:"size:50;not null;index" json:"entity"`
	EntityID  string    `gorm:"size:64;not null" json:"entityId"`
	Action    string    `gorm:"size:10;not null" json:"action"`
	Payload   JSON      `gorm:"type:json" json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
