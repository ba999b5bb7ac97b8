package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/user"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/middleware"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/response"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates an account.
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration request", err)
		return
	}

	dto, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrUsernameAlreadyExists) {
			response.Conflict(c, "username already taken")
			return
		}
		response.InternalServerError(c, "failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login issues a token pair.
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		response.InternalServerError(c, "failed to login")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new pair.
// POST /api/v1/auth/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Unauthorized(c, "invalid refresh token")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProfile returns the authenticated user.
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	dto, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, dto)
}
