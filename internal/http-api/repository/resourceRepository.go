package repository

import (
	"context"
	"fmt"
	"strings"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceFilters drive the vault search listing. Zero values mean "no
// filter" for that dimension.
type ResourceFilters struct {
	Search       string
	TeamID       *uuid.UUID
	SkillLevelID *uuid.UUID
	MentorID     *uuid.UUID
	TechnologyID *uuid.UUID
	ResourceType *models.ResourceType
	Limit        int
	Offset       int
}

type ResourceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, resource *models.Resource) error
	Update(ctx context.Context, resource *models.Resource) error
	ListFiltered(ctx context.Context, filters ResourceFilters) ([]models.Resource, error)
	ListNewest(ctx context.Context, limit int) ([]models.Resource, error)
	ListMostPopular(ctx context.Context, limit int) ([]models.Resource, error)
	ListTeamFavorites(ctx context.Context, teamID uuid.UUID, limit int) ([]models.Resource, error)
	CountByUploader(ctx context.Context, uploaderID uuid.UUID) (int64, error)
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// withAssociations eager-loads the reference associations the read DTOs
// serialize.
func (r *resourceRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Technology").
		Preload("Mentor").
		Preload("Team").
		Preload("SkillLevel")
}

func (r *resourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	if err := r.withAssociations(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

// Update persists content edits. The aggregate columns are omitted: they
// belong to the rating recalculation and a stale in-memory snapshot must
// never overwrite what a concurrent rating write just committed.
func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).
		Omit("average_rating", "ratings_count").
		Save(resource).Error; err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

// ListFiltered is the vault search: optional case-insensitive title or
// description match plus reference-id filters, newest first.
func (r *resourceRepository) ListFiltered(ctx context.Context, filters ResourceFilters) ([]models.Resource, error) {
	q := r.withAssociations(ctx).Order("created_at DESC")

	if filters.Search != "" {
		// LOWER+LIKE instead of ILIKE so the sqlite test databases match
		// postgres behavior.
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filters.TeamID != nil {
		q = q.Where("team_id = ?", *filters.TeamID)
	}
	if filters.SkillLevelID != nil {
		q = q.Where("skill_level_id = ?", *filters.SkillLevelID)
	}
	if filters.MentorID != nil {
		q = q.Where("mentor_id = ?", *filters.MentorID)
	}
	if filters.TechnologyID != nil {
		q = q.Where("technology_id = ?", *filters.TechnologyID)
	}
	if filters.ResourceType != nil {
		q = q.Where("resource_type = ?", *filters.ResourceType)
	}

	var resources []models.Resource
	err := q.Limit(filters.Limit).Offset(filters.Offset).Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) ListNewest(ctx context.Context, limit int) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.withAssociations(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

// ListMostPopular returns rated resources ordered by average rating, ties
// broken by rating count.
func (r *resourceRepository) ListMostPopular(ctx context.Context, limit int) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.withAssociations(ctx).
		Where("ratings_count > 0").
		Order("average_rating DESC, ratings_count DESC").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

// ListTeamFavorites returns the team's resources that have earned at least
// one perfect score, most recently updated first.
func (r *resourceRepository) ListTeamFavorites(ctx context.Context, teamID uuid.UUID, limit int) ([]models.Resource, error) {
	perfect := r.db.Model(&models.Rating{}).
		Select("DISTINCT resource_id").
		Where("score = ?", 5)

	var resources []models.Resource
	err := r.withAssociations(ctx).
		Where("team_id = ?", teamID).
		Where("id IN (?)", perfect).
		Order("updated_at DESC").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) CountByUploader(ctx context.Context, uploaderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Where("uploader_id = ?", uploaderID).
		Count(&count).Error
	return count, err
}
