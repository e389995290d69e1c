package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

type failingStudentRepo struct{}

func (failingStudentRepo) ListStudents(context.Context, models.StudentFilter) ([]models.Student, int, error) {
	return nil, 0, errors.New("dataset unavailable")
}

func TestStudentServiceList(t *testing.T) {
	svc := NewStudentService(datasetRepo(t), nil)
	active := false

	students, pagination, err := svc.List(context.Background(), models.StudentFilter{Active: &active})
	require.NoError(t, err)
	assert.Equal(t, &models.Pagination{Page: 1, PageSize: 20, TotalCount: 2}, pagination)
	require.Len(t, students, 2)
	assert.Equal(t, "Max", students[0].FullName)

	students, pagination, err = svc.List(context.Background(), models.StudentFilter{Page: 3, PageSize: 7})
	require.NoError(t, err)
	assert.Equal(t, 20, pagination.TotalCount)
	assert.Len(t, students, 6)
}

func TestStudentServiceSearch(t *testing.T) {
	svc := NewStudentService(datasetRepo(t), nil)
	ctx := context.Background()

	matches, err := svc.Search(ctx, "MAT")
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	matches, err = svc.Search(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, matches, MaxSuggestions)

	matches, err = svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	matches, err = svc.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStudentServiceRepoFailure(t *testing.T) {
	svc := NewStudentService(failingStudentRepo{}, nil)

	_, _, err := svc.List(context.Background(), models.StudentFilter{})
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
	_, err = svc.Search(context.Background(), "erik")
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
