package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// TeacherCategoryHandler teacher type endpoints.
type TeacherCategoryHandler struct {
	categorySvc service.TeacherCategoryService
}

// NewTeacherCategoryHandler creates a TeacherCategoryHandler.
func NewTeacherCategoryHandler(categorySvc service.TeacherCategoryService) *TeacherCategoryHandler {
	return &TeacherCategoryHandler{categorySvc: categorySvc}
}

// List GET /teacher-types
func (h *TeacherCategoryHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.categorySvc.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los tipos de docente.")
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create POST /teacher-types
func (h *TeacherCategoryHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.TeacherCategoryForm
	if !bindForm(c, &form) {
		return
	}

	category, err := h.categorySvc.Create(c.Request.Context(), rc, &form)
	if err != nil {
		respondError(c, err, "Error al registrar el tipo de docente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Tipo de docente registrado exitosamente.", category)
}

// Update POST /teacher-types/:id
func (h *TeacherCategoryHandler) Update(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.TeacherCategoryForm
	if !bindForm(c, &form) {
		return
	}

	category, err := h.categorySvc.Update(c.Request.Context(), rc, c.Param("id"), &form)
	if err != nil {
		respondError(c, err, "Error al actualizar el tipo de docente.")
		return
	}

	response.Flash(c, http.StatusOK, "Tipo de docente actualizado exitosamente.", category)
}

// Delete DELETE /teacher-types/:id
func (h *TeacherCategoryHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.categorySvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar el tipo de docente.")
		return
	}

	response.Flash(c, http.StatusOK, "Tipo de docente eliminado exitosamente.", nil)
}
