package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// DashboardHandler back-office landing page.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Summary GET /dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	var q dto.DashboardQuery
	if !bindQuery(c, &q) {
		return
	}

	summary, err := h.dashboardSvc.Summary(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err, "Error al cargar el panel.")
		return
	}

	response.OK(c, summary)
}
