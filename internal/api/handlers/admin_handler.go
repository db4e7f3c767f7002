package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/pkg/response"
	"github.com/farmart-ke/farmart-backend/pkg/utils"
)

type AdminHandler struct {
	audit *application.AuditService
	admin *application.AdminService
	repos *repository.Repos
}

func NewAdminHandler(audit *application.AuditService, admin *application.AdminService, repos *repository.Repos) *AdminHandler {
	return &AdminHandler{audit: audit, admin: admin, repos: repos}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by optional parameters like user_id, resource_type, action, time range, with pagination support.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     string   false  "User UUID to filter logs by user"
// @Param        resource_type query     string   false  "Resource type to filter" example("animal")
// @Param        action        query     string   false  "Action type to filter" example("create")
// @Param        start_time    query     string   false  "Start time in RFC3339 format, e.g. 2023-01-01T00:00:00Z"
// @Param        end_time      query     string   false  "End time in RFC3339 format, e.g. 2023-02-01T00:00:00Z"
// @Param        limit         query     int      false  "Max number of records to return (default 100, max 1000)"
// @Param        offset        query     int      false  "Offset for pagination (default 0)"
// @Success 	 200 {array}   object 					 "List of audit logs"
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /admin/audit [get]
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uidStr := c.Query("user_id"); uidStr != "" {
		uid, err := uuid.Parse(uidStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
			return
		}
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	limitStr := c.DefaultQuery("limit", "100")
	offsetStr := c.DefaultQuery("offset", "0")
	limit, _ := strconv.Atoi(limitStr)
	offset, _ := strconv.Atoi(offsetStr)

	if limit > 1000 {
		limit = 1000
	}

	params.Limit = limit
	params.Offset = offset

	logs, err := h.audit.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// VerifyFarmer godoc
// @Summary Mark a farmer profile as verified
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Farmer ID"
// @Param input body object false "Optional payload with is_verified set to false to revoke"
// @Success 200 {object} response.SuccessResponse "Updated farmer profile"
// @Failure 400 {object} response.ErrorResponse "Invalid farmer id"
// @Failure 404 {object} response.ErrorResponse "Farmer not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/farmers/{id}/verify [put]
func (h *AdminHandler) VerifyFarmer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid farmer id"})
		return
	}

	// Body is optional; verification defaults to true.
	var payload struct {
		IsVerified *bool `json:"is_verified"`
	}
	_ = c.ShouldBindJSON(&payload)
	verified := true
	if payload.IsVerified != nil {
		verified = *payload.IsVerified
	}

	before, after, err := h.admin.VerifyFarmer(id, verified)
	if err != nil {
		if errors.Is(err, application.ErrFarmerNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Farmer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "update", "farmer", fmt.Sprintf("%d", after.ID), before.ToDTO(), after.ToDTO(), "verification changed", h.repos.Audit)

	c.JSON(http.StatusOK, response.SuccessResponse{Data: after.ToDTO()})
}
