package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

// MaxSuggestions caps the search dropdown.
const MaxSuggestions = 5

type studentRepository interface {
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
}

// StudentService handles student lookups.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// List returns students and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	filter.Page, filter.PageSize = page, size

	students, total, err := s.repo.ListStudents(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Search returns up to MaxSuggestions students whose name contains query, ignoring case.
// A blank query suggests nothing.
func (s *StudentService) Search(ctx context.Context, query string) ([]models.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Student{}, nil
	}
	students, _, err := s.repo.ListStudents(ctx, models.StudentFilter{Search: query, Page: 1, PageSize: MaxSuggestions})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
	}
	return students, nil
}
