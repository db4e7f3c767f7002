package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/domain/order"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/pkg/response"
	"github.com/farmart-ke/farmart-backend/pkg/utils"
)

type OrderHandler struct {
	svc   *application.OrderService
	repos *repository.Repos
}

func NewOrderHandler(svc *application.OrderService, repos *repository.Repos) *OrderHandler {
	return &OrderHandler{svc: svc, repos: repos}
}

// ListMyOrders godoc
// @Summary List the current buyer's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} order.OrderDTO
// @Failure 404 {object} response.MessageResponse "No buyer profile found for this user"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.svc.ListMyOrders(uid)
	if err != nil {
		if errors.Is(err, application.ErrBuyerProfileMissing) {
			c.JSON(http.StatusNotFound, response.MessageResponse{Message: "No buyer profile found for this user"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	dtos := make([]order.OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, o.ToDTO())
	}
	c.JSON(http.StatusOK, dtos)
}

// CreateOrder godoc
// @Summary Create an order for the current buyer
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body order.CreateOrderInput true "Order contents"
// @Success 201 {object} response.OrderResponse "Order created"
// @Failure 400 {object} response.MessageResponse "Missing required fields: items, total_amount"
// @Failure 404 {object} response.MessageResponse "No buyer profile found for this user"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.MessageResponse{Message: "Missing required fields: items, total_amount"})
		return
	}

	o, err := h.svc.CreateOrder(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrBuyerProfileMissing):
			c.JSON(http.StatusNotFound, response.MessageResponse{Message: "No buyer profile found for this user"})
		case errors.Is(err, application.ErrOrderFieldsMissing):
			c.JSON(http.StatusBadRequest, response.MessageResponse{Message: "Missing required fields: items, total_amount"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "create", "order", fmt.Sprintf("%d", o.ID), nil, o.ToDTO(), "", h.repos.Audit)

	c.JSON(http.StatusCreated, response.OrderResponse{
		Message: "Order created successfully",
		Order:   o.ToDTO(),
	})
}

// GetOrder godoc
// @Summary Get one of the current buyer's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} order.OrderDTO
// @Failure 404 {object} response.MessageResponse "Order not found or access denied"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, response.MessageResponse{Message: "Order not found or access denied"})
		return
	}

	o, err := h.svc.GetOrder(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrBuyerProfileMissing):
			c.JSON(http.StatusNotFound, response.MessageResponse{Message: "No buyer profile found for this user"})
		case errors.Is(err, application.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, response.MessageResponse{Message: "Order not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, o.ToDTO())
}

// GetOrderStats godoc
// @Summary Order totals for the current buyer
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.OrderStatsResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /orders/stats [get]
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	totalOrders, totalSpent, err := h.svc.GetStats(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.OrderStatsResponse{
		TotalOrders: totalOrders,
		TotalSpent:  totalSpent,
	})
}
