package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload attached to every authenticated request.
// UserID carries the user's UUID and mirrors the registered subject.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *Claims) IsFarmer() bool {
	return c.Role == "farmer"
}

func (c *Claims) IsBuyer() bool {
	return c.Role == "buyer"
}
