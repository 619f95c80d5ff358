package repository

import (
	"context"
	"math"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	// Set upserts the (userID, resourceID) rating and recomputes the
	// resource's aggregate fields in one transaction. Returns the freshly
	// recalculated average and count.
	Set(ctx context.Context, userID, resourceID uuid.UUID, score int) (avg float64, count int64, err error)
	GetByUserAndResource(ctx context.Context, userID, resourceID uuid.UUID) (*models.Rating, error)
	Recalculate(ctx context.Context, resourceID uuid.UUID) (avg float64, count int64, err error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Set writes the rating and the derived aggregates as one unit of work: no
// other transaction can observe the new rating row next to stale
// average_rating/ratings_count values.
//
// The ON CONFLICT clause on (user_id, resource_id) turns the loser of a
// concurrent create race into an update of the existing row, preserving its
// id and created_at. Only score (and updated_at) change on re-rating.
func (r *ratingRepository) Set(ctx context.Context, userID, resourceID uuid.UUID, score int) (float64, int64, error) {
	var avg float64
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rating := models.Rating{
			UserID:     userID,
			ResourceID: resourceID,
			Score:      score,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&rating).Error; err != nil {
			return err
		}

		var err error
		avg, count, err = recalculate(tx, resourceID)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

// GetByUserAndResource retrieves a user's rating for a specific resource.
func (r *ratingRepository) GetByUserAndResource(ctx context.Context, userID, resourceID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Recalculate rederives the cached aggregates from the rating rows and writes
// them back. Idempotent; safe to call redundantly.
func (r *ratingRepository) Recalculate(ctx context.Context, resourceID uuid.UUID) (float64, int64, error) {
	return recalculate(r.db.WithContext(ctx), resourceID)
}

// recalculate is a full re-derivation: it never trusts the previous cached
// values, so it self-heals after concurrent writers or manual data edits.
// The average is rounded half away from zero to 2 decimal places; 0.00 when
// the resource has no ratings.
func recalculate(tx *gorm.DB, resourceID uuid.UUID) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := tx.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS cnt").
		Where("resource_id = ?", resourceID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}

	avg := RoundRating(row.Avg)

	// UpdateColumns keeps updated_at untouched: aggregates are a derived
	// view, not a content edit, and team favorites order by updated_at.
	err = tx.Model(&models.Resource{}).
		Where("id = ?", resourceID).
		UpdateColumns(map[string]interface{}{
			"average_rating": avg,
			"ratings_count":  row.Cnt,
		}).Error
	if err != nil {
		return 0, 0, err
	}
	return avg, row.Cnt, nil
}

// RoundRating rounds an average score half away from zero to 2 decimals,
// e.g. 4.125 -> 4.13.
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// CountByUser counts how many resources the user has rated.
func (r *ratingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
