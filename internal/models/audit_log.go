package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog records a before/after pair for sensitive mutations, currently the
// unlink operations.
type AuditLog struct {
	ID        string            `gorm:"type:uuid;primaryKey" json:"id"`
	Action    string            `gorm:"not null;index" json:"action"`
	TableName string            `gorm:"not null" json:"table_name"`
	RecordID  string            `gorm:"type:uuid;not null;index" json:"record_id"`
	OldValues datatypes.JSONMap `json:"old_values"`
	NewValues datatypes.JSONMap `json:"new_values"`
	ActorID   string            `gorm:"type:uuid;not null" json:"actor_id"`
	CreatedAt time.Time         `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
