package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmart-ke/farmart-backend/internal/domain/order"
	"github.com/farmart-ke/farmart-backend/pkg/response"
)

type orderEnvelope struct {
	Message string         `json:"message"`
	Order   order.OrderDTO `json:"order"`
}

func createOrder(t *testing.T, token string, items []map[string]interface{}, total float64) order.OrderDTO {
	resp := doRequest(t, "POST", "/api/orders", token, map[string]interface{}{
		"items":        items,
		"total_amount": total,
	}, http.StatusCreated)

	var result orderEnvelope
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.Equal(t, "Order created successfully", result.Message)
	require.NotEmpty(t, result.Order.ID)
	return result.Order
}

func TestCreateOrder(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)

	o := createOrder(t, token, []map[string]interface{}{
		{"animal_id": 1, "quantity": 1},
	}, 185000)

	require.Equal(t, "paid", o.Status)
	require.Equal(t, "mpesa", o.PaymentMethod)
	require.NotEmpty(t, o.CreatedAt)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "POST", "/api/orders", token, map[string]interface{}{}, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Missing required fields: items, total_amount")
}

func TestCreateOrder_NoBuyerProfile(t *testing.T) {
	token := loginUser(t, farmerEmail, testPassword)

	resp := doRequest(t, "POST", "/api/orders", token, map[string]interface{}{
		"items":        []map[string]interface{}{{"animal_id": 1}},
		"total_amount": 1000,
	}, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "No buyer profile found for this user")
}

func TestListMyOrders(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)
	createOrder(t, token, []map[string]interface{}{{"animal_id": 2}}, 9000)

	resp := doRequest(t, "GET", "/api/orders", token, nil, http.StatusOK)

	var orders []order.OrderDTO
	err := json.Unmarshal(resp.Body.Bytes(), &orders)
	require.NoError(t, err)
	require.NotEmpty(t, orders)
}

func TestListMyOrders_NoBuyerProfile(t *testing.T) {
	token := loginUser(t, farmerEmail, testPassword)

	resp := doRequest(t, "GET", "/api/orders", token, nil, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "No buyer profile found for this user")
}

func TestGetOrder(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)
	created := createOrder(t, token, []map[string]interface{}{{"animal_id": 3}}, 4500)

	resp := doRequest(t, "GET", "/api/orders/"+created.ID, token, nil, http.StatusOK)

	var got order.OrderDTO
	err := json.Unmarshal(resp.Body.Bytes(), &got)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, 4500.0, got.TotalAmount)
}

func TestGetOrder_OtherBuyerDenied(t *testing.T) {
	ownerToken := loginUser(t, buyerEmail, testPassword)
	created := createOrder(t, ownerToken, []map[string]interface{}{{"animal_id": 4}}, 7000)

	otherEmail := "otherbuyer@farmart.test"
	doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    otherEmail,
		"password": testPassword,
		"role":     "buyer",
	}, http.StatusCreated)
	otherToken := loginUser(t, otherEmail, testPassword)

	resp := doRequest(t, "GET", "/api/orders/"+created.ID, otherToken, nil, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Order not found or access denied")
}

func TestGetOrder_BadID(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "GET", "/api/orders/abc", token, nil, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Order not found or access denied")
}

func TestOrderStats(t *testing.T) {
	statsEmail := "statsbuyer@farmart.test"
	doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    statsEmail,
		"password": testPassword,
		"role":     "buyer",
	}, http.StatusCreated)
	token := loginUser(t, statsEmail, testPassword)

	createOrder(t, token, []map[string]interface{}{{"animal_id": 1}}, 100.50)
	createOrder(t, token, []map[string]interface{}{{"animal_id": 2}}, 200.25)

	resp := doRequest(t, "GET", "/api/orders/stats", token, nil, http.StatusOK)

	var stats response.OrderStatsResponse
	err := json.Unmarshal(resp.Body.Bytes(), &stats)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalOrders)
	require.Equal(t, 300.75, stats.TotalSpent)
}

func TestOrderStats_NoBuyerProfileIsZero(t *testing.T) {
	token := loginUser(t, farmerEmail, testPassword)

	resp := doRequest(t, "GET", "/api/orders/stats", token, nil, http.StatusOK)

	var stats response.OrderStatsResponse
	err := json.Unmarshal(resp.Body.Bytes(), &stats)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalOrders)
	require.Equal(t, 0.0, stats.TotalSpent)
}
