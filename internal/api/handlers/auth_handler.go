package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farmart-ke/farmart-backend/internal/application"
	"github.com/farmart-ke/farmart-backend/internal/config"
	"github.com/farmart-ke/farmart-backend/internal/config/db"
	"github.com/farmart-ke/farmart-backend/internal/domain/user"
	"github.com/farmart-ke/farmart-backend/internal/repository"
	"github.com/farmart-ke/farmart-backend/pkg/response"
	"github.com/farmart-ke/farmart-backend/pkg/utils"
)

type AuthHandler struct {
	svc   *application.UserService
	repos *repository.Repos
}

func NewAuthHandler(svc *application.UserService, repos *repository.Repos) *AuthHandler {
	return &AuthHandler{svc: svc, repos: repos}
}

// currentUserID resolves the authenticated user's UUID from the JWT claims.
// Writes the error response itself so callers can just bail out.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func userPayload(usr user.User) response.UserPayload {
	return response.UserPayload{
		ID:          usr.ID.String(),
		Email:       usr.Email,
		Role:        string(usr.Role),
		FullName:    usr.FullName,
		PhoneNumber: usr.PhoneNumber,
		Location:    usr.Location,
	}
}

// Health godoc
// @Summary Service and database health check
// @Tags auth
// @Produce json
// @Success 200 {object} response.HealthResponse "Service online"
// @Failure 500 {object} map[string]string "Database unreachable"
// @Router /auth/health [get]
func (h *AuthHandler) Health(c *gin.Context) {
	if err := db.DB.Exec("SELECT 1").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "error",
			"database": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.HealthResponse{
		Status:      "online",
		Database:    "connected",
		BackendTime: time.Now().UTC().Format(time.RFC3339),
	})
}

// Register godoc
// @Summary Register a farmer or buyer account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration info"
// @Success 201 {object} response.RegisterResponse "Account created"
// @Failure 400 {object} response.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} response.ErrorResponse "Email or phone already registered"
// @Failure 500 {object} response.ErrorResponse "Registration failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing email, password, or role"})
		return
	}

	usr, err := h.svc.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingFields):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing email, password, or role"})
		case errors.Is(err, application.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid role. Must be 'farmer' or 'buyer'"})
		case errors.Is(err, application.ErrEmailTaken):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, application.ErrFarmerFieldsRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Farmers require farm_name, location, and phone_number"})
		case errors.Is(err, application.ErrPhoneTaken):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Phone number already registered"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "register", "user", usr.ID.String(), nil, userPayload(usr), "user registered", h.repos.Audit)

	msg := "Buyer registered successfully"
	if usr.Role == user.RoleFarmer {
		msg = "Farmer registered successfully"
	}
	c.JSON(http.StatusCreated, response.RegisterResponse{
		Message: msg,
		UserID:  usr.ID.String(),
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.LoginResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		86400,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        userPayload(usr),
	})
}

// Logout godoc
// @Summary Clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.UserPayload
// @Failure 400 {object} response.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	usr, err := h.svc.GetCurrentUser(uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	payload := userPayload(usr)
	created := usr.CreatedAt.UTC().Format(time.RFC3339)
	payload.CreatedAt = &created
	c.JSON(http.StatusOK, payload)
}
