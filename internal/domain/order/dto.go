package order

import "encoding/json"

// CreateOrderInput keeps items as raw JSON so the cart snapshot is stored
// without reinterpretation. Pointer fields signal key presence.
type CreateOrderInput struct {
	Items         json.RawMessage `json:"items" swaggertype:"object"`
	TotalAmount   *float64        `json:"total_amount" example:"185000"`
	Status        *string         `json:"status" example:"paid"`
	PaymentMethod *string         `json:"payment_method" example:"mpesa"`
}
