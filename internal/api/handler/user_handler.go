package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// UserHandler administrator account endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.userSvc.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los usuarios.")
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create POST /users
func (h *UserHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.UserForm
	if !bindForm(c, &form) {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), rc, &form)
	if err != nil {
		respondError(c, err, "Error al registrar el usuario. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Usuario registrado exitosamente.", user)
}

// Delete refuses while the user is referenced.
// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar el usuario. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Usuario eliminado exitosamente.", nil)
}

// ForceDelete DELETE /users/:id/force
func (h *UserHandler) ForceDelete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.userSvc.ForceDelete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar el usuario. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Usuario eliminado forzadamente.", nil)
}
