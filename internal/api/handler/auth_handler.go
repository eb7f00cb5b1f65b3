package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maca31/IFPhub/internal/dto"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/jwt"
	"github.com/Maca31/IFPhub/pkg/response"
)

// AuthHandler serves the auth module.
type AuthHandler struct {
	authSvc service.AuthService
	userSvc service.UserService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService, userSvc service.UserService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, userSvc: userSvc}
}

// Register creates an account.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid registration payload")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, "email already registered")
		case errors.Is(err, service.ErrCourseNotFound):
			response.BadRequest(c, "unknown course")
		default:
			response.InternalError(c, "")
		}
		return
	}

	profile, err := h.userSvc.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Login exchanges credentials for a token pair.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid login payload")
		return
	}

	user, tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		response.InternalError(c, "")
		return
	}

	profile, err := h.userSvc.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c, "")
		return
	}

	response.OK(c, dto.LoginResponse{User: profile, Tokens: *tokens})
}

// Logout revokes the presented access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	claims, ok := v.(*jwt.Claims)
	if !exists || !ok {
		response.Unauthorized(c, "must sign in")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c, "")
		return
	}
	response.Success(c)
}

// Me returns the authenticated user's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	profile, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "")
		return
	}
	response.OK(c, profile)
}
