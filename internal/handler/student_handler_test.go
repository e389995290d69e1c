package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
)

func studentRouter(t *testing.T, srv studentService) *gin.Engine {
	router := newRouter(t)
	h := NewStudentHandler(srv)
	router.GET("/students", h.List)
	router.GET("/students/search", h.Search)
	return router
}

func TestStudentHandlerListBindsQuery(t *testing.T) {
	srv := &fakeStudentSrv{
		students:   []models.Student{{ID: 1, FullName: "Erik", Active: true}},
		pagination: &models.Pagination{Page: 2, PageSize: 5, TotalCount: 18},
	}
	rec := serve(studentRouter(t, srv), http.MethodGet, "/students?active=true&page=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.lastFilter.Active)
	assert.True(t, *srv.lastFilter.Active)
	assert.Equal(t, 2, srv.lastFilter.Page)
	assert.Equal(t, 5, srv.lastFilter.PageSize)

	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Erik", envelope.Data[0]["full_name"])
	assert.Equal(t, float64(18), envelope.Pagination["total_count"])
}

func TestStudentHandlerListRejectsOversizedPage(t *testing.T) {
	rec := serve(studentRouter(t, &fakeStudentSrv{}), http.MethodGet, "/students?pageSize=500", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHandlerSearch(t *testing.T) {
	srv := &fakeStudentSrv{students: []models.Student{{ID: 3, FullName: "Matis_S"}}}
	rec := serve(studentRouter(t, srv), http.MethodGet, "/students/search?q=mat", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mat", srv.lastQuery)
}

func TestStudentHandlerSearchError(t *testing.T) {
	srv := &fakeStudentSrv{err: errors.New("boom")}
	rec := serve(studentRouter(t, srv), http.MethodGet, "/students/search?q=x", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
