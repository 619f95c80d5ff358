package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one user's 1-5 score for one resource. The unique index on
// (user_id, resource_id) guarantees at most one row per pair; re-rating
// updates the score in place and never inserts a duplicate. There is no
// delete path anywhere in the system: ratings are created or updated, never
// destroyed.
type Rating struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_resource;index"`
	ResourceID uuid.UUID `json:"resource_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_resource;index"`
	Score      int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Resource *Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
}

func (Rating) TableName() string {
	return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
