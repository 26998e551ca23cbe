package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler spreadsheet downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTeachers downloads the filtered teacher directory.
// GET /teachers/export?search=&teacher_type_id=
func (h *ExportHandler) ExportTeachers(c *gin.Context) {
	var q dto.ListQuery
	if !bindQuery(c, &q) {
		return
	}

	buf, filename, err := h.exportSvc.ExportTeachers(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al generar el archivo de docentes.")
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
