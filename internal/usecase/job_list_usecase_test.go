package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/store"
)

func TestListJobs(t *testing.T) {
	u := NewJobListUsecase(seededStore())

	items, total, err := u.ListJobs(context.Background(), JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 3)
}

func TestListJobs_Filters(t *testing.T) {
	u := NewJobListUsecase(seededStore())

	items, total, err := u.ListJobs(context.Background(), JobListParams{Skill: "go"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "j1", items[0].JobID)
	assert.Equal(t, "j3", items[1].JobID)

	items, total, err = u.ListJobs(context.Background(), JobListParams{Location: "Bengaluru"})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "alias match plus the remote posting")
	require.Len(t, items, 2)
}

func TestListJobs_Pagination(t *testing.T) {
	u := NewJobListUsecase(seededStore())

	items, total, err := u.ListJobs(context.Background(), JobListParams{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 2)

	items, total, err = u.ListJobs(context.Background(), JobListParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "j3", items[0].JobID)

	items, total, err = u.ListJobs(context.Background(), JobListParams{Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, items)
}

func TestListJobs_InvalidParams(t *testing.T) {
	u := NewJobListUsecase(seededStore())

	_, _, err := u.ListJobs(context.Background(), JobListParams{Limit: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = u.ListJobs(context.Background(), JobListParams{Limit: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = u.ListJobs(context.Background(), JobListParams{Offset: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListJobs_EmptyStore(t *testing.T) {
	u := NewJobListUsecase(store.New())

	items, total, err := u.ListJobs(context.Background(), JobListParams{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
