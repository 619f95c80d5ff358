package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an employee account. Accounts are provisioned on first Telegram
// login; team and skill level are optional and set from the profile page.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TelegramID   int64      `json:"telegram_id" gorm:"not null;uniqueIndex"`
	Username     *string    `json:"username" gorm:"size:255"`
	FirstName    *string    `json:"first_name" gorm:"size:255"`
	LastName     *string    `json:"last_name" gorm:"size:255"`
	TeamID       *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	SkillLevelID *uuid.UUID `json:"skill_level_id" gorm:"type:uuid;index"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Team       *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	SkillLevel *SkillLevel `json:"skill_level,omitempty" gorm:"foreignKey:SkillLevelID"`
}

func (User) TableName() string {
	return "users"
}

// IDs are generated app-side so the sqlite test databases behave the same
// as postgres.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
