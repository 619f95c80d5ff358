package service

import (
	"context"
	"errors"
	"log/slog"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNoTeam is an actor-state precondition failure: team favorites require
// the requesting user to have a team set on their profile.
var ErrNoTeam = errors.New("set team to see team favorites")

const (
	teamFavoritesDefaultLimit = 100
	teamFavoritesMaxLimit     = 200
)

type ResourceService interface {
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.ResourceResponse, error)
	ListFiltered(ctx context.Context, filters repository.ResourceFilters, userID uuid.UUID) ([]dto.ResourceResponse, error)
	Create(ctx context.Context, uploaderID uuid.UUID, data *dto.CreateResourceDTO) (*dto.ResourceResponse, error)
	Update(ctx context.Context, id uuid.UUID, data *dto.UpdateResourceDTO) (*dto.ResourceResponse, error)
	// ListTeamFavorites returns the user's team's resources that have at
	// least one perfect score. Fails with ErrNoTeam when the user has no
	// team assigned.
	ListTeamFavorites(ctx context.Context, user *models.User, limit int) ([]dto.ResourceResponse, error)
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	favoriteRepo repository.FavoriteRepository
	ratingRepo   repository.RatingRepository
	cache        RecommendationCache
	logger       *slog.Logger
}

func NewResourceService(
	resourceRepo repository.ResourceRepository,
	favoriteRepo repository.FavoriteRepository,
	ratingRepo repository.RatingRepository,
	cache RecommendationCache,
	logger *slog.Logger,
) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		favoriteRepo: favoriteRepo,
		ratingRepo:   ratingRepo,
		cache:        cache,
		logger:       logger,
	}
}

// GetByID returns the resource annotated with the caller's favorite state
// and own rating (userID may be uuid.Nil for anonymous reads).
func (s *resourceService) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToResourceResponse(resource)
	if userID != uuid.Nil {
		isFav, err := s.favoriteRepo.Exists(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		resp.IsFavorite = isFav

		rating, err := s.ratingRepo.GetByUserAndResource(ctx, userID, id)
		if err == nil {
			resp.UserRating = &rating.Score
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

func (s *resourceService) ListFiltered(ctx context.Context, filters repository.ResourceFilters, userID uuid.UUID) ([]dto.ResourceResponse, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	resources, err := s.resourceRepo.ListFiltered(ctx, filters)
	if err != nil {
		return nil, err
	}

	var favoriteIDs map[uuid.UUID]bool
	if userID != uuid.Nil {
		favoriteIDs, err = s.favoriteRepo.ResourceIDSet(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	return dto.FromModelsToResourceResponses(resources, favoriteIDs), nil
}

func (s *resourceService) Create(ctx context.Context, uploaderID uuid.UUID, data *dto.CreateResourceDTO) (*dto.ResourceResponse, error) {
	resource := &models.Resource{
		UploaderID:   uploaderID,
		Title:        data.Title,
		Description:  data.Description,
		FilePath:     data.FilePath,
		ResourceType: models.ResourceType(data.ResourceType),
		TechnologyID: data.TechnologyID,
		MentorID:     data.MentorID,
		TeamID:       data.TeamID,
		SkillLevelID: data.SkillLevelID,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	// A new upload changes the "newest" half of the recommendation list.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("recommendation cache invalidation failed", "error", err)
		}
	}

	return s.GetByID(ctx, resource.ID, uploaderID)
}

func (s *resourceService) Update(ctx context.Context, id uuid.UUID, data *dto.UpdateResourceDTO) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if data.Title != nil {
		resource.Title = *data.Title
	}
	if data.Description != nil {
		resource.Description = data.Description
	}
	if data.FilePath != nil {
		resource.FilePath = *data.FilePath
	}
	if data.ResourceType != nil {
		resource.ResourceType = models.ResourceType(*data.ResourceType)
	}
	if data.TechnologyID != nil {
		resource.TechnologyID = data.TechnologyID
	}
	if data.MentorID != nil {
		resource.MentorID = data.MentorID
	}
	if data.TeamID != nil {
		resource.TeamID = data.TeamID
	}
	if data.SkillLevelID != nil {
		resource.SkillLevelID = data.SkillLevelID
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id, uuid.Nil)
}

func (s *resourceService) ListTeamFavorites(ctx context.Context, user *models.User, limit int) ([]dto.ResourceResponse, error) {
	if user.TeamID == nil {
		return nil, ErrNoTeam
	}
	if limit <= 0 {
		limit = teamFavoritesDefaultLimit
	}
	if limit > teamFavoritesMaxLimit {
		limit = teamFavoritesMaxLimit
	}

	resources, err := s.resourceRepo.ListTeamFavorites(ctx, *user.TeamID, limit)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := s.favoriteRepo.ResourceIDSet(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToResourceResponses(resources, favoriteIDs), nil
}
