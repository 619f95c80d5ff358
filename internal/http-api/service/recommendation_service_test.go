package service

import (
	"context"
	"testing"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func makeResource(title string) models.Resource {
	return models.Resource{ID: uuid.New(), UploaderID: uuid.New(), Title: title}
}

func TestRecommend_HybridDedup(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := NewRecommendationService(resourceRepo, favoriteRepo, nil, testLogger())

	shared := makeResource("new and highly rated")
	newest := []models.Resource{shared, makeResource("fresh 1"), makeResource("fresh 2")}
	popular := []models.Resource{makeResource("classic"), shared}

	resourceRepo.On("ListNewest", mock.Anything, 3).Return(newest, nil)
	resourceRepo.On("ListMostPopular", mock.Anything, 3).Return(popular, nil)

	items, err := svc.Recommend(context.Background(), uuid.Nil, 0)

	assert.NoError(t, err)
	// The overlapping resource keeps its newest-half position and appears once.
	assert.Len(t, items, 4)
	assert.Equal(t, shared.ID, items[0].ID)
	seen := map[uuid.UUID]int{}
	for _, it := range items {
		seen[it.ID]++
	}
	assert.Equal(t, 1, seen[shared.ID])
	// Anonymous caller: no favorite lookup.
	favoriteRepo.AssertNotCalled(t, "ResourceIDSet", mock.Anything, mock.Anything)
}

func TestRecommend_TruncatesToLimit(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	svc := NewRecommendationService(resourceRepo, new(MockFavoriteRepository), nil, testLogger())

	newest := []models.Resource{makeResource("a"), makeResource("b"), makeResource("c")}
	popular := []models.Resource{makeResource("d"), makeResource("e"), makeResource("f")}
	resourceRepo.On("ListNewest", mock.Anything, 3).Return(newest, nil)
	resourceRepo.On("ListMostPopular", mock.Anything, 3).Return(popular, nil)

	items, err := svc.Recommend(context.Background(), uuid.Nil, 2)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, newest[0].ID, items[0].ID)
	assert.Equal(t, newest[1].ID, items[1].ID)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	svc := NewRecommendationService(resourceRepo, new(MockFavoriteRepository), nil, testLogger())

	resourceRepo.On("ListNewest", mock.Anything, 3).Return([]models.Resource{}, nil)
	resourceRepo.On("ListMostPopular", mock.Anything, 3).Return([]models.Resource{}, nil)

	items, err := svc.Recommend(context.Background(), uuid.Nil, 0)

	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecommend_FavoriteAnnotation(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	favoriteRepo := new(MockFavoriteRepository)
	svc := NewRecommendationService(resourceRepo, favoriteRepo, nil, testLogger())

	userID := uuid.New()
	starred := makeResource("starred")
	other := makeResource("other")

	resourceRepo.On("ListNewest", mock.Anything, 3).Return([]models.Resource{starred, other}, nil)
	resourceRepo.On("ListMostPopular", mock.Anything, 3).Return([]models.Resource{}, nil)
	favoriteRepo.On("ResourceIDSet", mock.Anything, userID).
		Return(map[uuid.UUID]bool{starred.ID: true}, nil)

	items, err := svc.Recommend(context.Background(), userID, 0)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, items[0].IsFavorite)
	assert.False(t, items[1].IsFavorite)
}

func TestRecommend_CacheHitSkipsDatabase(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	cache := new(MockRecommendationCache)
	svc := NewRecommendationService(resourceRepo, new(MockFavoriteRepository), cache, testLogger())

	cached := []dto.ResourceResponse{{ID: uuid.New(), Title: "from cache"}}
	cache.On("Get", mock.Anything).Return(cached, true)

	items, err := svc.Recommend(context.Background(), uuid.Nil, 0)

	assert.NoError(t, err)
	assert.Equal(t, cached, items)
	resourceRepo.AssertNotCalled(t, "ListNewest", mock.Anything, mock.Anything)
	resourceRepo.AssertNotCalled(t, "ListMostPopular", mock.Anything, mock.Anything)
}

func TestRecommend_CacheMissPopulatesCache(t *testing.T) {
	resourceRepo := new(MockResourceRepository)
	cache := new(MockRecommendationCache)
	svc := NewRecommendationService(resourceRepo, new(MockFavoriteRepository), cache, testLogger())

	cache.On("Get", mock.Anything).Return(nil, false)
	resourceRepo.On("ListNewest", mock.Anything, 3).Return([]models.Resource{makeResource("a")}, nil)
	resourceRepo.On("ListMostPopular", mock.Anything, 3).Return([]models.Resource{}, nil)
	cache.On("Set", mock.Anything, mock.AnythingOfType("[]dto.ResourceResponse")).Return(nil)

	items, err := svc.Recommend(context.Background(), uuid.Nil, 0)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	cache.AssertExpectations(t)
}
