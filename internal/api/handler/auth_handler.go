package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// AuthHandler authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login issues an access token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Correo y contraseña son obligatorios.")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Error al iniciar sesión. Por favor, intenta nuevamente.")
		return
	}

	response.OK(c, result)
}

// Logout revokes the current access token.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, "Error al cerrar sesión.")
		return
	}

	response.Flash(c, http.StatusOK, "Sesión cerrada exitosamente.", nil)
}

// Me returns the current administrator.
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Error al obtener el usuario.")
		return
	}

	response.OK(c, user)
}
