package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCVUploadRepositoryOwnership(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCVUploadRepository()

	upload := &model.CVUpload{UserID: "alice", FileName: "cv.pdf"}
	require.NoError(t, repo.Create(ctx, upload))
	require.NotEqual(t, uuid.Nil, upload.ID)

	got, err := repo.FindByIDForUser(ctx, upload.ID.String(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", got.FileName)

	_, err = repo.FindByIDForUser(ctx, upload.ID.String(), "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByIDForUser(ctx, "not-a-uuid", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCVUploadRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCVUploadRepository()

	upload := &model.CVUpload{UserID: "alice"}
	require.NoError(t, repo.Create(ctx, upload))

	upload.OptimizedContent = "better cv"
	require.NoError(t, repo.Update(ctx, upload))

	got, err := repo.FindByIDForUser(ctx, upload.ID.String(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "better cv", got.OptimizedContent)
}

func TestMemoryCVUploadRepositoryListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCVUploadRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &model.CVUpload{
			UserID:    "alice",
			FileName:  string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &model.CVUpload{UserID: "bob"}))

	page, total, err := repo.ListByUser(ctx, "alice", 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "e", page[0].FileName)
	assert.Equal(t, "d", page[1].FileName)

	tail, _, err := repo.ListByUser(ctx, "alice", 4, 2)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "a", tail[0].FileName)

	empty, _, err := repo.ListByUser(ctx, "alice", 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
