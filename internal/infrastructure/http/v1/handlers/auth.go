package handlers

import (
	"github.com/gin-gonic/gin"

	"pharmapos/internal/domain/auth"
	"pharmapos/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles login and operator account management.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresAt:   session.ExpiresAt,
		Username:    session.Username,
	})
}

// ListUsers handles GET /users.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.UserResponse, len(users))
	for i, u := range users {
		items[i] = dto.UserResponse{Username: u.Username, CreatedAt: u.CreatedAt}
	}
	h.OK(c, items)
}

// AddUser handles POST /users.
func (h *AuthHandler) AddUser(c *gin.Context) {
	var req dto.AddUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.AddUser(c.Request.Context(), req.Username, req.Password); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, req.Username)
}

// DeleteUser handles DELETE /users/:username.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
