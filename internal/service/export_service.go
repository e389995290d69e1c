package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
	"github.com/Axton-Industries/Nextgen-work/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// SupportedFormat reports whether format can be rendered.
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatCSV, FormatPDF:
		return true
	}
	return false
}

type studentDashboardProvider interface {
	Student(ctx context.Context, name string, state timefilter.FilterState) (*dto.StudentDashboardResponse, bool, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string, notes ...string) ([]byte, error)
}

// ExportResult is a rendered report ready to download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders a student's weekly series as a downloadable report.
type ExportService struct {
	dashboards studentDashboardProvider
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the pkg/export ones.
func NewExportService(dashboards studentDashboardProvider, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{dashboards: dashboards, csv: csv, pdf: pdf, logger: logger}
}

var reportHeaders = []string{"Week", "Minutes", "Class minutes", "Score", "Class score"}

// StudentReport renders the student's activity and performance per resolved week.
func (s *ExportService) StudentReport(ctx context.Context, name string, state timefilter.FilterState, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !SupportedFormat(format) {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	view, _, err := s.dashboards.Student(ctx, name, state)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Headers: reportHeaders}
	for i, week := range view.Charts.Week {
		score, classScore := "", ""
		if i < len(view.Charts.Performance) {
			score = strconv.Itoa(view.Charts.Performance[i].Student)
			classScore = strconv.Itoa(view.Charts.Performance[i].Class)
		}
		data.AddRow(week.AxisLabel, strconv.Itoa(week.Student), strconv.Itoa(week.Average), score, classScore)
	}

	base := fmt.Sprintf("%s-%s", slug(view.Student.FullName), slug(state.Label))
	var body []byte
	result := &ExportResult{}
	switch format {
	case FormatCSV:
		body, err = s.csv.Render(data)
		result.Filename = base + ".csv"
		result.ContentType = "text/csv; charset=utf-8"
	case FormatPDF:
		notes := []string{
			state.Label,
			fmt.Sprintf("%d min/day, %d%% score, %d%% completion", view.Summary.MinutesPerDay, view.Summary.ScorePct, view.Summary.CompletionPct),
		}
		body, err = s.pdf.Render(data, view.Student.FullName, notes...)
		result.Filename = base + ".pdf"
		result.ContentType = "application/pdf"
	}
	if err != nil {
		s.logger.Error("render student report", zap.String("student", view.Student.FullName), zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	result.Body = body
	return result, nil
}

// slug keeps letters and digits, lowercased, joined by dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
