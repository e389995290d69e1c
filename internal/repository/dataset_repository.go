package repository

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
)

//go:embed data/dataset.yaml
var embeddedDataset []byte

// ErrRecordNotFound is returned when a lookup matches nothing in the dataset.
var ErrRecordNotFound = errors.New("record not found")

// DatasetRepository serves the static classroom dataset. It is read-only, so it is safe
// for concurrent use; every accessor hands out copies.
type DatasetRepository struct {
	data   models.Dataset
	source string
}

// NewDatasetRepository loads the dataset from path, or the embedded copy when path is empty.
func NewDatasetRepository(path string) (*DatasetRepository, error) {
	if path == "" {
		return ParseDataset(embeddedDataset, "embedded")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return ParseDataset(raw, path)
}

// ParseDataset decodes and validates a YAML dataset.
func ParseDataset(raw []byte, source string) (*DatasetRepository, error) {
	var data models.Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", source, err)
	}
	if err := validateDataset(data); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", source, err)
	}
	return &DatasetRepository{data: data, source: source}, nil
}

func validateDataset(d models.Dataset) error {
	if len(d.Students) == 0 {
		return errors.New("no students")
	}
	seen := make(map[string]struct{}, len(d.Students))
	for _, s := range d.Students {
		name := strings.ToLower(strings.TrimSpace(s.FullName))
		if name == "" {
			return fmt.Errorf("student %d has no name", s.ID)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate student name %q", s.FullName)
		}
		seen[name] = struct{}{}
	}
	for _, q := range d.TopErrorQuestions {
		if q.Errors < 0 {
			return fmt.Errorf("question %d has negative error count", q.ID)
		}
	}
	for _, sk := range d.Baselines.Skills {
		if sk.Floor < 0 || sk.Floor > 10 {
			return fmt.Errorf("skill %s floor %d out of range", sk.Subject, sk.Floor)
		}
	}
	return nil
}

// Source names where the dataset was loaded from.
func (r *DatasetRepository) Source() string { return r.source }

// ListStudents returns students matching the filter and the total before paging.
func (r *DatasetRepository) ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]models.Student, 0, len(r.data.Students))
	for _, s := range r.data.Students {
		if filter.Active != nil && s.Active != *filter.Active {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(s.FullName), needle) {
			continue
		}
		matched = append(matched, s)
	}
	total := len(matched)
	if filter.PageSize <= 0 {
		return matched, total, nil
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filter.PageSize
	if start >= total {
		return []models.Student{}, total, nil
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// FindStudentByName matches names case-insensitively.
func (r *DatasetRepository) FindStudentByName(ctx context.Context, name string) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for _, s := range r.data.Students {
		if strings.EqualFold(s.FullName, name) {
			student := s
			return &student, nil
		}
	}
	return nil, ErrRecordNotFound
}

// SummaryStats returns the class headline cards.
func (r *DatasetRepository) SummaryStats(context.Context) []models.StatCard {
	return cloneSlice(r.data.SummaryStats)
}

// WritingOverview returns the writing overview rows in dataset order.
func (r *DatasetRepository) WritingOverview(context.Context) []models.WritingOverview {
	return cloneSlice(r.data.WritingOverview)
}

// Engagement returns the engagement scatter points.
func (r *DatasetRepository) Engagement(context.Context) []models.EngagementMetric {
	return cloneSlice(r.data.Engagement)
}

// Improvement returns the improvement scatter points.
func (r *DatasetRepository) Improvement(context.Context) []models.ImprovementStat {
	return cloneSlice(r.data.Improvement)
}

// ErrorWords returns the misspelled word counts, unranked.
func (r *DatasetRepository) ErrorWords(context.Context) []models.ErrorAnalysis {
	return cloneSlice(r.data.ErrorWords)
}

// TopErrorQuestions returns the question error counts, unranked.
func (r *DatasetRepository) TopErrorQuestions(context.Context) []models.ErrorQuestion {
	return cloneSlice(r.data.TopErrorQuestions)
}

// Baselines returns the canned student series.
func (r *DatasetRepository) Baselines(context.Context) models.StudentBaselines {
	b := r.data.Baselines
	return models.StudentBaselines{
		Assignments:  cloneSlice(b.Assignments),
		WeekActivity: cloneSlice(b.WeekActivity),
		Performance:  cloneSlice(b.Performance),
		Skills:       cloneSlice(b.Skills),
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
