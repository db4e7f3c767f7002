package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/domain/animal"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/internal/storage"
	"github.com/farmart-ke/farmart-backend/pkg/response"
	"github.com/farmart-ke/farmart-backend/pkg/utils"
)

type AnimalHandler struct {
	svc   *application.AnimalService
	repos *repository.Repos
}

func NewAnimalHandler(svc *application.AnimalService, repos *repository.Repos) *AnimalHandler {
	return &AnimalHandler{svc: svc, repos: repos}
}

// ListAnimals godoc
// @Summary List animals on the marketplace
// @Tags animals
// @Produce json
// @Param species query string false "Filter by species" example(Cow)
// @Param status query string false "Filter by status: available, reserved, sold"
// @Param farmer_id query int false "Filter by farmer"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {array} animal.AnimalDTO
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	var query animal.ListAnimalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	items, _, err := h.svc.ListAnimals(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	dtos := make([]animal.AnimalDTO, 0, len(items))
	for _, a := range items {
		dtos = append(dtos, a.ToDTO())
	}
	c.JSON(http.StatusOK, dtos)
}

// GetAnimal godoc
// @Summary Get a single animal
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} animal.AnimalDTO
// @Failure 400 {object} response.ErrorResponse "Invalid animal id"
// @Failure 404 {object} response.ErrorResponse "Animal not found"
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid animal id"})
		return
	}

	a, err := h.svc.GetAnimal(id)
	if err != nil {
		if errors.Is(err, application.ErrAnimalNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, a.ToDTO())
}

// CreateAnimal godoc
// @Summary List a new animal for sale
// @Tags animals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body animal.CreateAnimalInput true "Animal listing info"
// @Success 201 {object} response.AnimalResponse "Animal created"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "No farmer profile found for this user"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var input animal.CreateAnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Try to produce friendly validation messages for the frontend
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			msgs := make([]string, 0, len(verr))

			labels := map[string]string{
				"Species": "species",
				"Breed":   "breed",
				"Age":     "age",
				"Weight":  "weight",
				"Price":   "price",
				"Status":  "status",
			}

			for _, fe := range verr {
				field := fe.StructField()
				lbl, ok := labels[field]
				if !ok {
					lbl = strings.ToLower(field)
				}

				var msg string
				switch fe.Tag() {
				case "required":
					msg = fmt.Sprintf("%s is required", lbl)
				case "gt":
					msg = fmt.Sprintf("%s must be greater than %s", lbl, fe.Param())
				case "gte":
					msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
				case "oneof":
					msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
				default:
					msg = fmt.Sprintf("%s is invalid", lbl)
				}
				msgs = append(msgs, msg)
			}

			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}

		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	a, err := h.svc.CreateAnimal(uid, input)
	if err != nil {
		if errors.Is(err, application.ErrFarmerProfileMissing) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "create", "animal", fmt.Sprintf("%d", a.ID), nil, a.ToDTO(), "", h.repos.Audit)

	c.JSON(http.StatusCreated, response.AnimalResponse{
		Message: "Animal created successfully",
		Animal:  a.ToDTO(),
	})
}

// UpdateAnimal godoc
// @Summary Update an owned animal listing
// @Tags animals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param input body animal.UpdateAnimalInput true "Fields to update"
// @Success 200 {object} response.AnimalResponse "Animal updated"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Animal not found or access denied"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /animals/{id} [put]
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		return
	}

	var input animal.UpdateAnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	before, err := h.svc.GetOwnedAnimal(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	a, err := h.svc.UpdateAnimal(uid, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalNotFound), errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "update", "animal", fmt.Sprintf("%d", a.ID), before.ToDTO(), a.ToDTO(), "", h.repos.Audit)

	c.JSON(http.StatusOK, response.AnimalResponse{
		Message: "Animal updated successfully",
		Animal:  a.ToDTO(),
	})
}

// DeleteAnimal godoc
// @Summary Remove an owned animal listing
// @Tags animals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} response.MessageResponse "Animal removed"
// @Failure 404 {object} response.ErrorResponse "Animal not found or access denied"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		return
	}

	before, err := h.svc.GetOwnedAnimal(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if err := h.svc.DeleteAnimal(uid, id); err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalNotFound), errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "delete", "animal", fmt.Sprintf("%d", id), before.ToDTO(), nil, "", h.repos.Audit)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Animal removed"})
}

// UploadImage godoc
// @Summary Upload a listing photo for an owned animal
// @Tags animals
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Animal ID"
// @Param image formData file true "Image file"
// @Success 200 {object} response.ImageUploadResponse "Image stored"
// @Failure 400 {object} response.ErrorResponse "No image file provided"
// @Failure 404 {object} response.ErrorResponse "Animal not found or access denied"
// @Failure 500 {object} response.ErrorResponse "Upload failed"
// @Router /animals/{id}/image [post]
func (h *AnimalHandler) UploadImage(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		return
	}

	// Verify ownership before anything lands in the bucket.
	if _, err := h.svc.GetOwnedAnimal(uid, id); err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No image file provided"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	objectName := fmt.Sprintf("animals/%d/%s", id, filepath.Base(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.UploadObject(c.Request.Context(), objectName, contentType, src, fileHeader.Size); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	imageURL := storage.ObjectURL(objectName)
	a, err := h.svc.SetAnimalImage(uid, id, imageURL)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFarmerProfileMissing):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No farmer profile found for this user"})
		case errors.Is(err, application.ErrAnimalNotFound), errors.Is(err, application.ErrAnimalAccessDenied):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Animal not found or access denied"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "update", "animal", fmt.Sprintf("%d", a.ID), nil, a.ToDTO(), "image uploaded", h.repos.Audit)

	c.JSON(http.StatusOK, response.ImageUploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: imageURL,
	})
}
