package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index"`
	Action       string         `gorm:"size:50;not null"`
	ResourceType string         `gorm:"size:50;not null"`
	ResourceID   string         `gorm:"size:64"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IPAddress    string         `gorm:"size:45"`
	UserAgent    string         `gorm:"size:255"`
	Description  string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}
