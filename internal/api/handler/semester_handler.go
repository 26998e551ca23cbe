package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// SemesterHandler semester endpoints.
type SemesterHandler struct {
	semesterSvc service.SemesterService
}

// NewSemesterHandler creates a SemesterHandler.
func NewSemesterHandler(semesterSvc service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterSvc: semesterSvc}
}

// List GET /semesters
func (h *SemesterHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.semesterSvc.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los semestres.")
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create POST /semesters
func (h *SemesterHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.SemesterForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.Create(c.Request.Context(), rc, &form, files)
	if err != nil {
		respondError(c, err, "Error al crear el semestre. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Semestre creado exitosamente.", semester)
}

// Update POST /semesters/:id
func (h *SemesterHandler) Update(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.SemesterForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.Update(c.Request.Context(), rc, c.Param("id"), &form, files)
	if err != nil {
		respondError(c, err, "Error al actualizar el semestre. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Semestre actualizado exitosamente.", semester)
}

// ToggleStatus PATCH /semesters/:id/toggle-status
func (h *SemesterHandler) ToggleStatus(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	semester, err := h.semesterSvc.ToggleActive(c.Request.Context(), rc, c.Param("id"))
	if err != nil {
		respondError(c, err, "Error al actualizar el estado del semestre.")
		return
	}

	message := "Semestre desactivado exitosamente."
	if semester.IsActive {
		message = "Semestre activado exitosamente."
	}
	response.Flash(c, http.StatusOK, message, semester)
}

// Delete DELETE /semesters/:id
func (h *SemesterHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.semesterSvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar el semestre. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Semestre eliminado exitosamente.", nil)
}
