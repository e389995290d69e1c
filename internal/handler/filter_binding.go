package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
	"github.com/Axton-Industries/Nextgen-work/pkg/response"
)

type filterBuilder interface {
	Build(q dto.FilterQuery) (timefilter.FilterState, error)
}

// bindFilter reads the shared filter query parameters. On failure the error response is already written.
func bindFilter(c *gin.Context, filters filterBuilder) (timefilter.FilterState, bool) {
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter parameters"))
		return timefilter.FilterState{}, false
	}
	return buildFilter(c, filters, q)
}

func buildFilter(c *gin.Context, filters filterBuilder, q dto.FilterQuery) (timefilter.FilterState, bool) {
	state, err := filters.Build(q)
	if err != nil {
		response.Error(c, err)
		return timefilter.FilterState{}, false
	}
	return state, true
}
