package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

// HealthResponse mirrors the payload the frontend polls on /api/auth/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	BackendTime string `json:"backend_time"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// UserPayload is the user object embedded in login and /me responses.
// CreatedAt is only populated by /me.
type UserPayload struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
	Location    *string `json:"location"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

type LoginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        UserPayload `json:"user"`
}

// CrashResponse is the verbose failure payload the wishlist commit path
// returns so the frontend can surface the underlying database error.
type CrashResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type AnimalResponse struct {
	Message string `json:"message"`
	Animal  any    `json:"animal"`
}

type ImageUploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

type OrderResponse struct {
	Message string `json:"message"`
	Order   any    `json:"order"`
}

type WishlistItemResponse struct {
	Message string `json:"message"`
	Item    any    `json:"item"`
}

type OrderStatsResponse struct {
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

type WishlistCheckResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
