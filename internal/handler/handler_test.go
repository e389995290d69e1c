package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/middleware"
	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/service"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

type responseEnvelope struct {
	Data       map[string]interface{} `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

type listEnvelope struct {
	Data       []map[string]interface{} `json:"data"`
	Pagination map[string]interface{}   `json:"pagination"`
}

type fakeDashboardSrv struct {
	overview   *dto.OverviewResponse
	student    *dto.StudentDashboardResponse
	hit        bool
	err        error
	lastName   string
	lastFilter timefilter.FilterState
}

func (f *fakeDashboardSrv) Overview(_ context.Context, state timefilter.FilterState) (*dto.OverviewResponse, bool, error) {
	f.lastFilter = state
	return f.overview, f.hit, f.err
}

func (f *fakeDashboardSrv) Student(_ context.Context, name string, state timefilter.FilterState) (*dto.StudentDashboardResponse, bool, error) {
	f.lastName = name
	f.lastFilter = state
	return f.student, f.hit, f.err
}

type fakeExportSrv struct {
	result     *service.ExportResult
	err        error
	lastFormat string
}

func (f *fakeExportSrv) StudentReport(_ context.Context, _ string, _ timefilter.FilterState, format string) (*service.ExportResult, error) {
	f.lastFormat = format
	return f.result, f.err
}

type fakeStudentSrv struct {
	students   []models.Student
	pagination *models.Pagination
	err        error
	lastFilter models.StudentFilter
	lastQuery  string
}

func (f *fakeStudentSrv) List(_ context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	f.lastFilter = filter
	return f.students, f.pagination, f.err
}

func (f *fakeStudentSrv) Search(_ context.Context, query string) ([]models.Student, error) {
	f.lastQuery = query
	return f.students, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newFilters() *service.FilterService {
	return service.NewFilterService(service.FilterServiceConfig{}, zap.NewNop())
}

// newRouter returns a gin engine with validators and response meta installed.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())
	router := gin.New()
	router.Use(middleware.WithResponseMeta())
	return router
}

func serve(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}
