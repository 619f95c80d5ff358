package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceType enumerates the kinds of shareable content.
type ResourceType string

const (
	ResourceTypeDoc       ResourceType = "doc"
	ResourceTypeBlueprint ResourceType = "blueprint"
	ResourceTypeSnippet   ResourceType = "snippet"
)

// ValidResourceType reports whether s is one of the known resource types.
func ValidResourceType(s string) bool {
	switch ResourceType(s) {
	case ResourceTypeDoc, ResourceTypeBlueprint, ResourceTypeSnippet:
		return true
	}
	return false
}

// Resource is a shareable unit of content (doc, blueprint or snippet).
//
// AverageRating and RatingsCount are a materialized view over the ratings
// table. They are never patched incrementally: every rating write triggers a
// full recompute (see repository.RatingRepository.Recalculate), so they must
// always equal the mean and count of the resource's rating rows.
type Resource struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	UploaderID   uuid.UUID    `json:"uploader_id" gorm:"type:uuid;not null;index"`
	Title        string       `json:"title" gorm:"size:512;not null;index"`
	Description  *string      `json:"description" gorm:"type:text"`
	FilePath     string       `json:"file_path" gorm:"size:1024;not null"`
	ResourceType ResourceType `json:"resource_type" gorm:"size:32;not null;default:doc;index"`

	TechnologyID *uuid.UUID `json:"technology_id" gorm:"type:uuid;index"`
	MentorID     *uuid.UUID `json:"mentor_id" gorm:"type:uuid;index"`
	TeamID       *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	SkillLevelID *uuid.UUID `json:"skill_level_id" gorm:"type:uuid;index"`

	AverageRating float64 `json:"average_rating" gorm:"type:numeric(3,2);not null;default:0"`
	RatingsCount  int64   `json:"ratings_count" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Uploader   *User       `json:"uploader,omitempty" gorm:"foreignKey:UploaderID"`
	Technology *Technology `json:"technology,omitempty" gorm:"foreignKey:TechnologyID"`
	Mentor     *Mentor     `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
	Team       *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	SkillLevel *SkillLevel `json:"skill_level,omitempty" gorm:"foreignKey:SkillLevelID"`
}

func (Resource) TableName() string {
	return "resources"
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
