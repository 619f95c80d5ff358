package service

import (
	"context"
	"errors"
	"log/slog"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrRatingNotFound   = errors.New("rating not found")
	ErrInvalidScore     = errors.New("score must be between 1 and 5")
)

type RatingService interface {
	// SetRating creates or updates the caller's rating for a resource and
	// returns the freshly recalculated aggregates. There is deliberately no
	// delete counterpart: ratings are never destroyed.
	SetRating(ctx context.Context, userID, resourceID uuid.UUID, score int) (*dto.RateResponse, error)
	GetUserRating(ctx context.Context, userID, resourceID uuid.UUID) (int, error)
}

type ratingService struct {
	ratingRepo   repository.RatingRepository
	resourceRepo repository.ResourceRepository
	cache        RecommendationCache
	logger       *slog.Logger
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	resourceRepo repository.ResourceRepository,
	cache RecommendationCache,
	logger *slog.Logger,
) RatingService {
	return &ratingService{
		ratingRepo:   ratingRepo,
		resourceRepo: resourceRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *ratingService) SetRating(ctx context.Context, userID, resourceID uuid.UUID, score int) (*dto.RateResponse, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	exists, err := s.resourceRepo.Exists(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	// Upsert and recalculation run in one transaction inside the repository:
	// no reader can observe the new rating next to stale aggregates.
	avg, count, err := s.ratingRepo.Set(ctx, userID, resourceID, score)
	if err != nil {
		return nil, err
	}

	// Popularity ordering may have shifted; drop the cached recommendation
	// list. Best effort only.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("recommendation cache invalidation failed", "error", err)
		}
	}

	return &dto.RateResponse{
		AverageRating: avg,
		RatingsCount:  count,
		UserRating:    score,
	}, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID, resourceID uuid.UUID) (int, error) {
	rating, err := s.ratingRepo.GetByUserAndResource(ctx, userID, resourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRatingNotFound
		}
		return 0, err
	}
	return rating.Score, nil
}
