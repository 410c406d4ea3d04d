package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annothem/annothem-backend/entity"
	"github.com/annothem/annothem-backend/repository"
)

func TestImageRepositoryCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	image := &entity.Image{
		Filename:    "cat.png",
		StoragePath: "abc-123.png",
		PublicURL:   "http://cdn.test/images/abc-123.png",
	}
	require.NoError(t, repo.ImageRepo.Create(image))

	assert.NotZero(t, image.ID)
	assert.False(t, image.CreatedAt.IsZero())

	got, err := repo.ImageRepo.GetByID(image.ID)
	require.NoError(t, err)
	assert.Equal(t, "cat.png", got.Filename)
	assert.Equal(t, "abc-123.png", got.StoragePath)
	assert.Equal(t, "http://cdn.test/images/abc-123.png", got.PublicURL)
}

func TestImageRepositoryGetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.ImageRepo.GetByID(12345)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrImageNotFound)
}

func TestImageRepositoryListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		img := &entity.Image{
			Filename:    "img.png",
			StoragePath: "key",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.ImageRepo.Create(img))
	}

	images, err := repo.ImageRepo.List(0, 100)
	require.NoError(t, err)
	require.Len(t, images, 5)
	for i := 1; i < len(images); i++ {
		assert.True(t, images[i-1].CreatedAt.After(images[i].CreatedAt),
			"images must be ordered newest first")
	}
}

func TestImageRepositoryListPagination(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		img := &entity.Image{
			Filename:    "img.png",
			StoragePath: "key",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.ImageRepo.Create(img))
	}

	page, err := repo.ImageRepo.List(1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// skip=1 drops the newest row
	assert.Equal(t, base.Add(3*time.Minute).Unix(), page[0].CreatedAt.Unix())
	assert.Equal(t, base.Add(2*time.Minute).Unix(), page[1].CreatedAt.Unix())
}

func TestImageRepositoryListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	images, err := repo.ImageRepo.List(0, 100)
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}
