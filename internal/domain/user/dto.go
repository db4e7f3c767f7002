package user

// RegisterInput uses pointers for the required trio so a missing key can
// be told apart from an empty value, matching the API's field-presence
// validation.
type RegisterInput struct {
	Email    *string `json:"email" example:"jane@farmart.com"`
	Password *string `json:"password" example:"secret123"`
	Role     *string `json:"role" example:"buyer"`

	FullName    *string `json:"full_name" example:"Jane Wanjiku"`
	PhoneNumber *string `json:"phone_number" example:"+254700123456"`
	Location    *string `json:"location" example:"Nairobi"`

	// Farmer-only profile field.
	FarmName *string `json:"farm_name" example:"Wanjiku Farm"`

	// Buyer-only profile fields.
	DeliveryAddress  *string `json:"delivery_address" example:"123 Moi Avenue, Nairobi"`
	PreferredContact *string `json:"preferred_contact" example:"email"`
}

type LoginInput struct {
	Email    string `json:"email" example:"jane@farmart.com"`
	Password string `json:"password" example:"secret123"`
}
