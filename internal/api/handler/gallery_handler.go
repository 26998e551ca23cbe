package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// GalleryHandler gallery endpoints.
type GalleryHandler struct {
	gallerySvc service.GalleryService
}

// NewGalleryHandler creates a GalleryHandler.
func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

// List GET /galleries
func (h *GalleryHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	page, err := h.gallerySvc.List(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener la galería.")
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Create POST /galleries
func (h *GalleryHandler) Create(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.GalleryForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	item, err := h.gallerySvc.Create(c.Request.Context(), rc, &form, files)
	if err != nil {
		respondError(c, err, "Error al guardar la galería. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusCreated, "Galería registrada exitosamente.", item)
}

// Update POST /galleries/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.GalleryForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage)
	if !ok {
		return
	}

	item, err := h.gallerySvc.Update(c.Request.Context(), rc, c.Param("id"), &form, files)
	if err != nil {
		respondError(c, err, "Error al actualizar la galería. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Galería actualizada exitosamente.", item)
}

// Delete DELETE /galleries/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}

	if err := h.gallerySvc.Delete(c.Request.Context(), rc, c.Param("id")); err != nil {
		respondError(c, err, "Error al eliminar la galería. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Galería eliminada exitosamente.", nil)
}
