package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/service"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
	"github.com/Axton-Industries/Nextgen-work/pkg/response"
)

type exportService interface {
	StudentReport(ctx context.Context, name string, state timefilter.FilterState, format string) (*service.ExportResult, error)
}

// ExportHandler serves downloadable student reports. A nil service means exports are disabled.
type ExportHandler struct {
	service exportService
	filters filterBuilder
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(service exportService, filters filterBuilder) *ExportHandler {
	return &ExportHandler{service: service, filters: filters}
}

// StudentReport godoc
// @Summary Export a student's weekly series
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param name path string true "Student full name"
// @Param format query string true "csv or pdf"
// @Param filter query string false "Filter label"
// @Param mode query string false "presets, months or weeks"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /dashboard/students/{name}/export [get]
func (h *ExportHandler) StudentReport(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrServiceUnavailable, "exports are disabled"))
		return
	}
	if h.filters == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var q dto.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export parameters"))
		return
	}
	state, ok := buildFilter(c, h.filters, q.FilterQuery)
	if !ok {
		return
	}
	result, err := h.service.StudentReport(c.Request.Context(), c.Param("name"), state, q.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}
