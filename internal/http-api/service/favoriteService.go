package service

import (
	"context"
	"errors"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
)

type FavoriteService interface {
	// Toggle flips the favorite state for (userID, resourceID) and reports
	// the new state.
	Toggle(ctx context.Context, userID, resourceID uuid.UUID) (*dto.FavoriteToggleResponse, error)
	ListResources(ctx context.Context, userID uuid.UUID) ([]dto.ResourceResponse, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	resourceRepo repository.ResourceRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, resourceRepo repository.ResourceRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		resourceRepo: resourceRepo,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, userID, resourceID uuid.UUID) (*dto.FavoriteToggleResponse, error) {
	exists, err := s.resourceRepo.Exists(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	favorited, err := s.favoriteRepo.Toggle(ctx, userID, resourceID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteToggleResponse{IsFavorite: favorited}, nil
}

func (s *favoriteService) ListResources(ctx context.Context, userID uuid.UUID) ([]dto.ResourceResponse, error) {
	if userID == uuid.Nil {
		return nil, errors.New("missing user id")
	}
	resources, err := s.favoriteRepo.ListResources(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := dto.FromModelsToResourceResponses(resources, nil)
	// Everything here is by definition favorited by the caller.
	for i := range out {
		out[i].IsFavorite = true
	}
	return out, nil
}
