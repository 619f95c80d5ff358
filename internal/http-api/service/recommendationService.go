package service

import (
	"context"
	"log/slog"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
)

const (
	recommendDefaultLimit = 50
	recommendMaxLimit     = 100

	// How many candidates each half of the hybrid contributes.
	recommendNewestCount  = 3
	recommendPopularCount = 3
)

// RecommendationCache holds the assembled (pre-personalization) candidate
// list. Implementations are best effort: a miss or an error just means the
// list is rebuilt from the database.
type RecommendationCache interface {
	Get(ctx context.Context) ([]dto.ResourceResponse, bool)
	Set(ctx context.Context, items []dto.ResourceResponse) error
	Invalidate(ctx context.Context) error
}

type RecommendationService interface {
	// Recommend returns the hybrid newest+popular list, deduplicated and
	// truncated to limit (default 50, clamped to [1,100]). The userID only
	// drives the is_favorite annotation; ranking is not personalized yet,
	// which is an intentional baseline rather than an omission.
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ResourceResponse, error)
}

type recommendationService struct {
	resourceRepo repository.ResourceRepository
	favoriteRepo repository.FavoriteRepository
	cache        RecommendationCache
	logger       *slog.Logger
}

func NewRecommendationService(
	resourceRepo repository.ResourceRepository,
	favoriteRepo repository.FavoriteRepository,
	cache RecommendationCache,
	logger *slog.Logger,
) RecommendationService {
	return &recommendationService{
		resourceRepo: resourceRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ResourceResponse, error) {
	if limit <= 0 {
		limit = recommendDefaultLimit
	}
	if limit > recommendMaxLimit {
		limit = recommendMaxLimit
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	// Per-caller annotation happens after the shared candidate list so the
	// cache stays user-agnostic.
	if userID != uuid.Nil && len(candidates) > 0 {
		favoriteIDs, err := s.favoriteRepo.ResourceIDSet(ctx, userID)
		if err != nil {
			return nil, err
		}
		for i := range candidates {
			candidates[i].IsFavorite = favoriteIDs[candidates[i].ID]
		}
	}

	return candidates, nil
}

// candidates assembles the deduplicated hybrid list: up to 3 newest
// resources first, then up to 3 most popular ones that were not already
// picked as newest. Deterministic given identical data; an empty database
// yields an empty (non-nil) slice.
func (s *recommendationService) candidates(ctx context.Context) ([]dto.ResourceResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	newest, err := s.resourceRepo.ListNewest(ctx, recommendNewestCount)
	if err != nil {
		return nil, err
	}
	popular, err := s.resourceRepo.ListMostPopular(ctx, recommendPopularCount)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(newest)+len(popular))
	combined := make([]models.Resource, 0, len(newest)+len(popular))
	for _, r := range newest {
		if !seen[r.ID] {
			seen[r.ID] = true
			combined = append(combined, r)
		}
	}
	for _, r := range popular {
		if !seen[r.ID] {
			seen[r.ID] = true
			combined = append(combined, r)
		}
	}

	items := dto.FromModelsToResourceResponses(combined, nil)

	if s.cache != nil {
		if err := s.cache.Set(ctx, items); err != nil {
			s.logger.Warn("recommendation cache store failed", "error", err)
		}
	}
	return items, nil
}
