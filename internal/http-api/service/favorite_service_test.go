package service

import (
	"context"
	"testing"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteToggle(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	resourceRepo := new(MockResourceRepository)
	svc := NewFavoriteService(favoriteRepo, resourceRepo)

	userID := uuid.New()
	resourceID := uuid.New()

	resourceRepo.On("Exists", mock.Anything, resourceID).Return(true, nil)
	favoriteRepo.On("Toggle", mock.Anything, userID, resourceID).Return(true, nil).Once()
	favoriteRepo.On("Toggle", mock.Anything, userID, resourceID).Return(false, nil).Once()

	resp, err := svc.Toggle(context.Background(), userID, resourceID)
	assert.NoError(t, err)
	assert.True(t, resp.IsFavorite)

	resp, err = svc.Toggle(context.Background(), userID, resourceID)
	assert.NoError(t, err)
	assert.False(t, resp.IsFavorite)

	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteToggle_ResourceMissing(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	resourceRepo := new(MockResourceRepository)
	svc := NewFavoriteService(favoriteRepo, resourceRepo)

	resourceID := uuid.New()
	resourceRepo.On("Exists", mock.Anything, resourceID).Return(false, nil)

	resp, err := svc.Toggle(context.Background(), uuid.New(), resourceID)

	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Nil(t, resp)
	favoriteRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteListResources(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	svc := NewFavoriteService(favoriteRepo, new(MockResourceRepository))

	userID := uuid.New()
	favoriteRepo.On("ListResources", mock.Anything, userID).
		Return([]models.Resource{makeResource("kept one"), makeResource("kept two")}, nil)

	items, err := svc.ListResources(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.IsFavorite)
	}
}

func TestFavoriteListResources_MissingUser(t *testing.T) {
	svc := NewFavoriteService(new(MockFavoriteRepository), new(MockResourceRepository))

	items, err := svc.ListResources(context.Background(), uuid.Nil)

	assert.Error(t, err)
	assert.Nil(t, items)
}
