package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmart-ke/farmart-backend/pkg/response"
)

func TestHealth(t *testing.T) {
	resp := doRequest(t, "GET", "/api/auth/health", "", nil, http.StatusOK)

	var result response.HealthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "online", result.Status)
	require.Equal(t, "connected", result.Database)
	require.NotEmpty(t, result.BackendTime)
}

func TestRegisterBuyer(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":     "newbuyer@farmart.test",
		"password":  testPassword,
		"role":      "buyer",
		"full_name": "Atieno Odhiambo",
	}, http.StatusCreated)

	var result response.RegisterResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "Buyer registered successfully", result.Message)
	require.NotEmpty(t, result.UserID)
}

func TestRegisterFarmer(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":        "newfarmer@farmart.test",
		"password":     testPassword,
		"role":         "farmer",
		"farm_name":    "Chebet Dairy",
		"location":     "Eldoret",
		"phone_number": "+254711222333",
	}, http.StatusCreated)

	require.Contains(t, resp.Body.String(), "Farmer registered successfully")
}

func TestRegister_MissingFields(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email": "incomplete@farmart.test",
	}, http.StatusBadRequest)

	require.Contains(t, resp.Body.String(), "Missing email, password, or role")
}

func TestRegister_InvalidRole(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "badrole@farmart.test",
		"password": testPassword,
		"role":     "admin",
	}, http.StatusBadRequest)

	require.Contains(t, resp.Body.String(), "Invalid role. Must be 'farmer' or 'buyer'")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    buyerEmail,
		"password": testPassword,
		"role":     "buyer",
	}, http.StatusConflict)

	require.Contains(t, resp.Body.String(), "Email already registered")
}

func TestRegister_FarmerWithoutProfileFields(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "bare-farmer@farmart.test",
		"password": testPassword,
		"role":     "farmer",
	}, http.StatusBadRequest)

	require.Contains(t, resp.Body.String(), "Farmers require farm_name, location, and phone_number")
}

func TestRegister_DuplicatePhone(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":        "second-farmer@farmart.test",
		"password":     testPassword,
		"role":         "farmer",
		"farm_name":    "Second Farm",
		"location":     "Kisumu",
		"phone_number": farmerPhone,
	}, http.StatusConflict)

	require.Contains(t, resp.Body.String(), "Phone number already registered")
}

func TestLogin(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    buyerEmail,
		"password": testPassword,
	}, http.StatusOK)

	var result response.LoginResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "Login successful", result.Message)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, buyerEmail, result.User.Email)
	require.Equal(t, "buyer", result.User.Role)

	cookies := resp.Result().Cookies()
	var tokenCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie, "login should set the token cookie")
	require.True(t, tokenCookie.HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    buyerEmail,
		"password": "wrongpass",
	}, http.StatusUnauthorized)

	require.Contains(t, resp.Body.String(), "Invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ghost@farmart.test",
		"password": testPassword,
	}, http.StatusUnauthorized)
}

func TestMe(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)
	resp := doRequest(t, "GET", "/api/auth/me", token, nil, http.StatusOK)

	var result response.UserPayload
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, buyerEmail, result.Email)
	require.NotNil(t, result.CreatedAt)
}

func TestMe_Unauthenticated(t *testing.T) {
	doRequest(t, "GET", "/api/auth/me", "", nil, http.StatusUnauthorized)
}

func TestLogout(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/logout", "", nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Logout successful")
}
