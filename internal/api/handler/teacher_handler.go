package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// TeacherHandler teacher directory endpoints.
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Index lists teachers together with the categories and active filters.
// GET /teachers
func (h *TeacherHandler) Index(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	result, err := h.teacherSvc.Index(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los docentes.")
		return
	}

	response.OK(c, result)
}

// Create POST /teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.TeacherForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), rc, &form, files)
	if err != nil {
		respondError(c, err, "Error al registrar el docente. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Docente registrado exitosamente.", teacher)
}

// Update POST /teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.TeacherForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), rc, c.Param("id"), &form, files)
	if err != nil {
		respondError(c, err, "Error al actualizar el docente. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Docente actualizado exitosamente.", teacher)
}

// Delete DELETE /teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar el docente. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Docente eliminado exitosamente.", nil)
}
