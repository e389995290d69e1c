package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/layout"
	"github.com/Axton-Industries/Nextgen-work/internal/middleware"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
	"github.com/Axton-Industries/Nextgen-work/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context, state timefilter.FilterState) (*dto.OverviewResponse, bool, error)
	Student(ctx context.Context, name string, state timefilter.FilterState) (*dto.StudentDashboardResponse, bool, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
	filters filterBuilder
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, filters filterBuilder) *DashboardHandler {
	return &DashboardHandler{service: service, filters: filters}
}

// Overview godoc
// @Summary Class overview dashboard
// @Tags Dashboard
// @Produce json
// @Param filter query string false "Filter label"
// @Param mode query string false "presets, months or weeks"
// @Param startYear query int false "Range start year (-1 for a week of the current year)"
// @Param startUnit query int false "Range start month or week"
// @Param endYear query int false "Range end year"
// @Param endUnit query int false "Range end month or week"
// @Param offset query int false "Weeks pagination offset"
// @Param year query int false "Year shown by the picker"
// @Success 200 {object} response.Envelope
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	if h.service == nil || h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	state, ok := bindFilter(c, h.filters)
	if !ok {
		return
	}
	overview, cacheHit, err := h.service.Overview(c.Request.Context(), state)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetLayoutCapped(c, layout.CappedCount(overview.Bubbles))
	respond(c, cacheHit, len(overview.Weeks), overview)
}

// Student godoc
// @Summary Single student dashboard
// @Tags Dashboard
// @Produce json
// @Param name path string true "Student full name"
// @Param filter query string false "Filter label"
// @Param mode query string false "presets, months or weeks"
// @Param startYear query int false "Range start year"
// @Param startUnit query int false "Range start month or week"
// @Param endYear query int false "Range end year"
// @Param endUnit query int false "Range end month or week"
// @Param offset query int false "Weeks pagination offset"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dashboard/students/{name} [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	if h.service == nil || h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	state, ok := bindFilter(c, h.filters)
	if !ok {
		return
	}
	view, cacheHit, err := h.service.Student(c.Request.Context(), c.Param("name"), state)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, cacheHit, len(view.Weeks), view)
}

func respond(c *gin.Context, cacheHit bool, weeks int, data interface{}) {
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetWeekCount(c, weeks)
	response.JSON(c, http.StatusOK, data, nil, middleware.Meta(c))
}
