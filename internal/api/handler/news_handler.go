package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// NewsHandler news endpoints.
type NewsHandler struct {
	newsSvc service.NewsService
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(newsSvc service.NewsService) *NewsHandler {
	return &NewsHandler{newsSvc: newsSvc}
}

// List GET /news
func (h *NewsHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.newsSvc.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener las noticias.")
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create POST /news
func (h *NewsHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.NewsForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	article, err := h.newsSvc.Create(c.Request.Context(), rc, &form, files)
	if err != nil {
		respondError(c, err, "Error al guardar la noticia. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Noticia registrada exitosamente.", article)
}

// Update POST /news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.NewsForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	article, err := h.newsSvc.Update(c.Request.Context(), rc, c.Param("id"), &form, files)
	if err != nil {
		respondError(c, err, "Error al actualizar la noticia. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Noticia actualizada exitosamente.", article)
}

// ToggleStatus flips the published flag.
// PATCH /news/:id/toggle-status
func (h *NewsHandler) ToggleStatus(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	article, err := h.newsSvc.TogglePublished(c.Request.Context(), rc, c.Param("id"))
	if err != nil {
		respondError(c, err, "Error al actualizar el estado de la noticia.")
		return
	}

	response.Flash(c, http.StatusOK, "Estado de la noticia actualizado correctamente.", article)
}

// Delete DELETE /news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.newsSvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar la noticia. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Noticia eliminada exitosamente.", nil)
}
