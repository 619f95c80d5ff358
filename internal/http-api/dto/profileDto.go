package dto

import (
	"github.com/google/uuid"
)

// ProfileStats are the counters shown on the profile page.
type ProfileStats struct {
	ResourcesCount int64 `json:"resources_count"`
	RatingsCount   int64 `json:"ratings_count"`
	TeamCount      int64 `json:"team_count"`
}

// ProfileResponse is the user plus derived stats, skill tags from favorited
// resources and suggested mentors.
type ProfileResponse struct {
	User                UserResponse     `json:"user"`
	Stats               ProfileStats     `json:"stats"`
	Skills              []string         `json:"skills"`
	Mentors             []MentorResponse `json:"mentors"`
	MentorsPersonalized bool             `json:"mentors_personalized"`
}

// UpdateProfileDTO for PATCH /profile; nil fields are left unchanged.
type UpdateProfileDTO struct {
	Username     *string    `json:"username" binding:"omitempty,max=255"`
	FirstName    *string    `json:"first_name" binding:"omitempty,max=255"`
	LastName     *string    `json:"last_name" binding:"omitempty,max=255"`
	TeamID       *uuid.UUID `json:"team_id"`
	SkillLevelID *uuid.UUID `json:"skill_level_id"`
}
