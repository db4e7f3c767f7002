package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/domain/wishlist"
	"github.com/farmart-ke/farmart-backend/pkg/response"
	"github.com/farmart-ke/farmart-backend/pkg/utils"
)

type WishlistHandler struct {
	svc *application.WishlistService
}

func NewWishlistHandler(svc *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

// ListMyWishlist godoc
// @Summary List the current user's wishlist
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {array} wishlist.WishlistDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /wishlist [get]
func (h *WishlistHandler) ListMyWishlist(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.svc.ListMyWishlist(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	dtos := make([]wishlist.WishlistDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, item.ToDTO())
	}
	c.JSON(http.StatusOK, dtos)
}

// AddToWishlist godoc
// @Summary Add an animal to the current user's wishlist
// @Tags wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body wishlist.AddWishlistInput true "Animal to save"
// @Success 200 {object} response.MessageResponse "Item already in wishlist"
// @Success 201 {object} response.WishlistItemResponse "Added to wishlist"
// @Failure 400 {object} response.MessageResponse "Missing required field: animal_id"
// @Failure 500 {object} response.CrashResponse "Database write failed"
// @Router /wishlist [post]
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var input wishlist.AddWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.MessageResponse{Message: "Missing required field: animal_id"})
		return
	}

	item, err := h.svc.AddToWishlist(uid, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrWishlistFieldMissing):
			c.JSON(http.StatusBadRequest, response.MessageResponse{Message: "Missing required field: animal_id"})
		case errors.Is(err, application.ErrAlreadyInWishlist):
			c.JSON(http.StatusOK, response.MessageResponse{Message: "Item already in wishlist"})
		default:
			// Surface the raw DB failure, e.g. an FK violation on a
			// deleted animal.
			c.JSON(http.StatusInternalServerError, response.CrashResponse{
				Error:   "Backend Crash",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, response.WishlistItemResponse{
		Message: "Added to wishlist",
		Item:    item.ToDTO(),
	})
}

// RemoveFromWishlist godoc
// @Summary Remove one of the current user's wishlist items
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param id path int true "Wishlist item ID"
// @Success 200 {object} response.MessageResponse "Removed from wishlist"
// @Failure 404 {object} response.MessageResponse "Wishlist item not found or access denied"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /wishlist/{id} [delete]
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, response.MessageResponse{Message: "Wishlist item not found or access denied"})
		return
	}

	if err := h.svc.RemoveFromWishlist(uid, id); err != nil {
		if errors.Is(err, application.ErrWishlistItemNotFound) {
			c.JSON(http.StatusNotFound, response.MessageResponse{Message: "Wishlist item not found or access denied"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Removed from wishlist"})
}

// CheckInWishlist godoc
// @Summary Check whether an animal is wishlisted
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Param animal_id path int true "Animal ID"
// @Success 200 {object} response.WishlistCheckResponse
// @Failure 400 {object} response.ErrorResponse "Invalid animal id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /wishlist/check/{animal_id} [get]
func (h *WishlistHandler) CheckInWishlist(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	animalID, err := utils.ParseIDParam(c, "animal_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	inWishlist, err := h.svc.CheckInWishlist(uid, animalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.WishlistCheckResponse{InWishlist: inWishlist})
}

// CountWishlist godoc
// @Summary Count the current user's wishlist items
// @Tags wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.CountResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /wishlist/count [get]
func (h *WishlistHandler) CountWishlist(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.svc.CountWishlist(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.CountResponse{Count: count})
}
