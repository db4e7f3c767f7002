package wishlist

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
)

type Wishlist struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	AnimalID  uint           `gorm:"not null;index"`
	Animal    *animal.Animal `gorm:"foreignKey:AnimalID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

// WishlistDTO includes the full animal so list views render without a
// second request.
type WishlistDTO struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	AnimalID  string            `json:"animal_id"`
	Animal    *animal.AnimalDTO `json:"animal"`
	CreatedAt string            `json:"created_at"`
}

func (w *Wishlist) ToDTO() WishlistDTO {
	dto := WishlistDTO{
		ID:        strconv.FormatUint(uint64(w.ID), 10),
		UserID:    w.UserID.String(),
		AnimalID:  strconv.FormatUint(uint64(w.AnimalID), 10),
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
	if w.Animal != nil {
		animalDTO := w.Animal.ToDTO()
		dto.Animal = &animalDTO
	}
	return dto
}

type AddWishlistInput struct {
	AnimalID *uint `json:"animal_id" example:"3"`
}
