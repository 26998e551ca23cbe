package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// SiteSettingHandler cover images and the resolution document.
type SiteSettingHandler struct {
	settingSvc service.SiteSettingService
}

// NewSiteSettingHandler creates a SiteSettingHandler.
func NewSiteSettingHandler(settingSvc service.SiteSettingService) *SiteSettingHandler {
	return &SiteSettingHandler{settingSvc: settingSvc}
}

// List GET /settings
func (h *SiteSettingHandler) List(c *gin.Context) {
	settings, err := h.settingSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al obtener la configuración.")
		return
	}

	response.OK(c, gin.H{"list": settings})
}

// Save upserts the setting named in the form.
// POST /settings
func (h *SiteSettingHandler) Save(c *gin.Context) {
	rc, ok := MustGetRequestContext(c)
	if !ok {
		return
	}
	var form dto.SettingForm
	if !bindForm(c, &form) {
		return
	}
	files, ok := readAttachments(c, service.FieldImage, service.FieldPDF)
	if !ok {
		return
	}

	setting, err := h.settingSvc.Save(c.Request.Context(), rc, &form, files)
	if err != nil {
		respondError(c, err, "Error al guardar la configuración. Por favor, intenta nuevamente.")
		return
	}

	response.Flash(c, http.StatusOK, "Portada registrada exitosamente.", setting)
}
