package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parcelease/admin-dashboard/internal/api/metrics"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Revenue handles GET /api/dashboard/revenue.
//
// @Summary      Week-over-week revenue chart
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  revenueResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c echo.Context) error {
	series, err := h.service.Revenue(c.Request().Context())
	if err != nil {
		metrics.DashboardQueryFailuresTotal.WithLabelValues("revenue").Inc()
		return fail(err, "Failed to fetch revenue data")
	}
	return c.JSON(http.StatusOK, toRevenueResponse(series))
}

// KPIs handles GET /api/dashboard/kpis.
//
// @Summary      Summary KPI cards
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   kpiResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c echo.Context) error {
	kpis, err := h.service.KPIs(c.Request().Context())
	if err != nil {
		metrics.DashboardQueryFailuresTotal.WithLabelValues("kpis").Inc()
		return fail(err, "Failed to fetch KPI data")
	}
	return c.JSON(http.StatusOK, toKPIResponses(kpis))
}
