package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	Role         Role      `gorm:"type:user_role;not null;default:'buyer'"`
	IsActive     bool      `gorm:"not null;default:true"`
	FullName     *string   `gorm:"size:100"`
	PhoneNumber  *string   `gorm:"size:20"`
	Location     *string   `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
