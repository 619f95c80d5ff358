package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user's bookmark of a resource. Pure set membership with a
// composite primary key; independent of the numeric rating tables.
type Favorite struct {
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	ResourceID uuid.UUID `json:"resource_id" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Resource *Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
