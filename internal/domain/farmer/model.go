package farmer

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Farmer struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmName    string    `gorm:"size:100;not null"`
	Location    string    `gorm:"size:255;not null"`
	PhoneNumber string    `gorm:"size:20;not null;unique"`
	IsVerified  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

type FarmerDTO struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	FarmName    string `json:"farm_name"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
	IsVerified  bool   `json:"is_verified"`
}

func (f *Farmer) ToDTO() FarmerDTO {
	return FarmerDTO{
		ID:          strconv.FormatUint(uint64(f.ID), 10),
		UserID:      f.UserID.String(),
		FarmName:    f.FarmName,
		Location:    f.Location,
		PhoneNumber: f.PhoneNumber,
		IsVerified:  f.IsVerified,
	}
}
