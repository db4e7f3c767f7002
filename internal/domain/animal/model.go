package animal

import (
	"strconv"
	"time"
)

// Animal statuses a listing can move through.
const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
)

type Animal struct {
	ID        uint      `gorm:"primaryKey"`
	FarmerID  uint      `gorm:"not null;index"`
	Species   string    `gorm:"size:50;not null"`
	Breed     *string   `gorm:"size:100"`
	Age       *int      // months
	Weight    *float64  // kg
	Price     float64   `gorm:"type:numeric(10,2);not null"`
	Status    string    `gorm:"size:20;not null;default:'available'"`
	ImageURL  *string   `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// AnimalDTO is the wire form of a listing. IDs go out as strings because
// that is what the web client has always consumed.
type AnimalDTO struct {
	ID       string   `json:"id"`
	Species  string   `json:"species"`
	Breed    *string  `json:"breed"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	Price    float64  `json:"price"`
	Status   string   `json:"status"`
	ImageURL *string  `json:"image_url"`
}

func (a *Animal) ToDTO() AnimalDTO {
	return AnimalDTO{
		ID:       strconv.FormatUint(uint64(a.ID), 10),
		Species:  a.Species,
		Breed:    a.Breed,
		Age:      a.Age,
		Weight:   a.Weight,
		Price:    a.Price,
		Status:   a.Status,
		ImageURL: a.ImageURL,
	}
}
