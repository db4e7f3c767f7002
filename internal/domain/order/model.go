package order

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID            uint           `gorm:"primaryKey"`
	BuyerID       uint           `gorm:"not null;index"`
	Items         datatypes.JSON `gorm:"not null"`
	TotalAmount   float64        `gorm:"type:numeric(10,2);not null"`
	Status        string         `gorm:"size:20;not null;default:'pending'"`
	PaymentMethod string         `gorm:"size:50;default:'mpesa'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

// OrderDTO is the wire form of an order. Items is passed through exactly
// as the client stored it.
type OrderDTO struct {
	ID            string          `json:"id"`
	BuyerID       string          `json:"buyer_id"`
	Items         json.RawMessage `json:"items" swaggertype:"object"`
	TotalAmount   float64         `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     string          `json:"created_at"`
}

func (o *Order) ToDTO() OrderDTO {
	return OrderDTO{
		ID:            strconv.FormatUint(uint64(o.ID), 10),
		BuyerID:       strconv.FormatUint(uint64(o.BuyerID), 10),
		Items:         json.RawMessage(o.Items),
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}
