package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// PublicHandler read-only endpoints consumed by the public website.
type PublicHandler struct {
	publicSvc service.PublicService
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(publicSvc service.PublicService) *PublicHandler {
	return &PublicHandler{publicSvc: publicSvc}
}

func metaOf[T any](page *dto.PageResult[T]) *response.Pagination {
	meta := response.NewPagination(page.Total, page.Page, page.PageSize)
	return &meta
}

// News GET /api/news
func (h *PublicHandler) News(c *gin.Context) {
	var q dto.PublicQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.publicSvc.News(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener las noticias.")
		return
	}
	response.Public(c, page.Items, metaOf(page))
}

// Galleries GET /api/galleries
func (h *PublicHandler) Galleries(c *gin.Context) {
	var q dto.PublicQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.publicSvc.Galleries(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener la galería.")
		return
	}
	response.Public(c, page.Items, metaOf(page))
}

// Semesters GET /api/semesters
func (h *PublicHandler) Semesters(c *gin.Context) {
	var q dto.PublicQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.publicSvc.Semesters(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los semestres.")
		return
	}
	response.Public(c, page.Items, metaOf(page))
}

// Teachers GET /api/teachers
func (h *PublicHandler) Teachers(c *gin.Context) {
	var q dto.PublicQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.publicSvc.Teachers(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al obtener los docentes.")
		return
	}
	response.Public(c, page.Items, metaOf(page))
}

// Settings GET /api/settings
func (h *PublicHandler) Settings(c *gin.Context) {
	settings, err := h.publicSvc.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al obtener la configuración.")
		return
	}
	response.Public(c, settings, nil)
}
