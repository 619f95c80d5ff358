package repository

import (
	"context"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	// Toggle flips the (userID, resourceID) membership and returns the new
	// state: true means the pair is now favorited.
	Toggle(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)
	ResourceIDSet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	ListResources(ctx context.Context, userID uuid.UUID) ([]models.Resource, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Toggle runs delete-then-insert inside a transaction. The composite primary
// key serializes two toggles racing on the same pair: the delete either
// removes the row (now unfavorited) or touches nothing, and the insert's ON
// CONFLICT DO NOTHING turns a lost insert race into a no-op that still lands
// on the favorited state. Two rows or half-applied state cannot occur.
func (r *favoriteRepository) Toggle(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	var favorited bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND resource_id = ?", userID, resourceID).
			Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}

		fav := models.Favorite{UserID: userID, ResourceID: resourceID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
			return err
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		Count(&count).Error
	return count > 0, err
}

// ResourceIDSet returns all resource ids the user has favorited, used for
// is_favorite annotation on list views.
func (r *favoriteRepository) ResourceIDSet(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ListResources returns the user's favorited resources, most recently
// favorited first.
func (r *favoriteRepository) ListResources(ctx context.Context, userID uuid.UUID) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.WithContext(ctx).
		Preload("Technology").
		Preload("Mentor").
		Preload("Team").
		Preload("SkillLevel").
		Joins("JOIN favorites ON favorites.resource_id = resources.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&resources).Error
	return resources, err
}
