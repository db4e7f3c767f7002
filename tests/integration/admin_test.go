package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farmart-ke/farmart-backend/internal/domain/farmer"
)

func farmerProfileID(t *testing.T) uint {
	var f farmer.Farmer
	err := gormDB.Where("phone_number = ?", farmerPhone).First(&f).Error
	require.NoError(t, err)
	return f.ID
}

func TestAuditLogs(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "GET", "/api/admin/audit", token, nil, http.StatusOK)

	var logs []map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &logs)
	require.NoError(t, err)
}

func TestAuditLogs_WithFilters(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "GET", "/api/admin/audit?action=register&resource_type=user&limit=10", token, nil, http.StatusOK)

	var logs []map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &logs)
	require.NoError(t, err)
}

func TestAuditLogs_InvalidUserID(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "GET", "/api/admin/audit?user_id=notauuid", token, nil, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Invalid user_id")
}

func TestAuditLogs_InvalidStartTime(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "GET", "/api/admin/audit?start_time=yesterday", token, nil, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Invalid start_time")
}

func TestAuditLogs_RequiresAdmin(t *testing.T) {
	token := loginUser(t, buyerEmail, testPassword)

	resp := doRequest(t, "GET", "/api/admin/audit", token, nil, http.StatusForbidden)
	require.Contains(t, resp.Body.String(), "admin only")
}

func TestAuditLogs_Unauthenticated(t *testing.T) {
	doRequest(t, "GET", "/api/admin/audit", "", nil, http.StatusUnauthorized)
}

func TestVerifyFarmer(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)
	id := farmerProfileID(t)

	resp := doRequest(t, "PUT", fmt.Sprintf("/api/admin/farmers/%d/verify", id), token, nil, http.StatusOK)

	var result struct {
		Data farmer.FarmerDTO `json:"data"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.True(t, result.Data.IsVerified)

	// Revoke with an explicit payload.
	resp = doRequest(t, "PUT", fmt.Sprintf("/api/admin/farmers/%d/verify", id), token, map[string]interface{}{
		"is_verified": false,
	}, http.StatusOK)
	err = json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.False(t, result.Data.IsVerified)
}

func TestVerifyFarmer_NotFound(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "PUT", "/api/admin/farmers/999999/verify", token, nil, http.StatusNotFound)
	require.Contains(t, resp.Body.String(), "Farmer not found")
}

func TestVerifyFarmer_BadID(t *testing.T) {
	token := loginUser(t, adminEmail, testPassword)

	resp := doRequest(t, "PUT", "/api/admin/farmers/abc/verify", token, nil, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Invalid farmer id")
}

func TestVerifyFarmer_RequiresAdmin(t *testing.T) {
	token := loginUser(t, farmerEmail, testPassword)
	id := farmerProfileID(t)

	doRequest(t, "PUT", fmt.Sprintf("/api/admin/farmers/%d/verify", id), token, nil, http.StatusForbidden)
}
