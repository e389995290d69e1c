package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/middleware"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
	"github.com/Axton-Industries/Nextgen-work/pkg/response"
)

type filterService interface {
	Weeks(q dto.FilterQuery) (*dto.FilterWeeksResponse, error)
	Transition(req dto.TransitionRequest) (*dto.FilterWeeksResponse, error)
	Presets() dto.PresetsResponse
	Calendar() dto.CalendarResponse
}

// FilterHandler exposes the time filter and calendar endpoints.
type FilterHandler struct {
	filters filterService
}

// NewFilterHandler constructs FilterHandler.
func NewFilterHandler(filters filterService) *FilterHandler {
	return &FilterHandler{filters: filters}
}

// Presets godoc
// @Summary List filter presets and modes
// @Tags Filters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /filters/presets [get]
func (h *FilterHandler) Presets(c *gin.Context) {
	if h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.filters.Presets(), nil)
}

// Weeks godoc
// @Summary Resolve a filter into plotted weeks
// @Tags Filters
// @Produce json
// @Param filter query string false "Filter label"
// @Param mode query string false "presets, months or weeks"
// @Param startYear query int false "Range start year"
// @Param startUnit query int false "Range start month or week"
// @Param endYear query int false "Range end year"
// @Param endUnit query int false "Range end month or week"
// @Param offset query int false "Weeks pagination offset"
// @Param year query int false "Year shown by the picker"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /filters/weeks [get]
func (h *FilterHandler) Weeks(c *gin.Context) {
	if h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter parameters"))
		return
	}
	resolved, err := h.filters.Weeks(q)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetWeekCount(c, len(resolved.Weeks))
	response.JSON(c, http.StatusOK, resolved, nil, middleware.Meta(c))
}

// Transition godoc
// @Summary Apply a filter action
// @Tags Filters
// @Accept json
// @Produce json
// @Param payload body dto.TransitionRequest true "State and action"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /filters/transition [post]
func (h *FilterHandler) Transition(c *gin.Context) {
	if h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	next, err := h.filters.Transition(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, next, nil)
}

// Calendar godoc
// @Summary School year month table
// @Tags Filters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/months [get]
func (h *FilterHandler) Calendar(c *gin.Context) {
	if h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, h.filters.Calendar(), nil)
}
