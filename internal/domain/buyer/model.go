package buyer

import (
	"time"

	"github.com/google/uuid"
)

type Buyer struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryAddress  *string   `gorm:"type:text"`
	PreferredContact *string   `gorm:"size:50"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}
