package dto

import (
	"time"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
)

// CreateResourceDTO for uploading a new resource.
type CreateResourceDTO struct {
	Title        string     `json:"title" binding:"required,max=512"`
	Description  *string    `json:"description"`
	FilePath     string     `json:"file_path" binding:"required,max=1024"`
	ResourceType string     `json:"resource_type" binding:"required,oneof=doc blueprint snippet"`
	TechnologyID *uuid.UUID `json:"technology_id"`
	MentorID     *uuid.UUID `json:"mentor_id"`
	TeamID       *uuid.UUID `json:"team_id"`
	SkillLevelID *uuid.UUID `json:"skill_level_id"`
}

// UpdateResourceDTO for partial updates; nil fields are left unchanged.
type UpdateResourceDTO struct {
	Title        *string    `json:"title" binding:"omitempty,max=512"`
	Description  *string    `json:"description"`
	FilePath     *string    `json:"file_path" binding:"omitempty,max=1024"`
	ResourceType *string    `json:"resource_type" binding:"omitempty,oneof=doc blueprint snippet"`
	TechnologyID *uuid.UUID `json:"technology_id"`
	MentorID     *uuid.UUID `json:"mentor_id"`
	TeamID       *uuid.UUID `json:"team_id"`
	SkillLevelID *uuid.UUID `json:"skill_level_id"`
}

// ResourceResponse is the read view of a resource, including the cached
// rating aggregates and per-caller annotations.
type ResourceResponse struct {
	ID            uuid.UUID           `json:"id"`
	UploaderID    uuid.UUID           `json:"uploader_id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description"`
	FilePath      string              `json:"file_path"`
	ResourceType  string              `json:"resource_type"`
	Technology    *TechnologyResponse `json:"technology,omitempty"`
	Mentor        *MentorResponse     `json:"mentor,omitempty"`
	Team          *TeamResponse       `json:"team,omitempty"`
	SkillLevel    *SkillLevelResponse `json:"skill_level,omitempty"`
	AverageRating float64             `json:"average_rating"`
	RatingsCount  int64               `json:"ratings_count"`
	IsFavorite    bool                `json:"is_favorite"`
	UserRating    *int                `json:"user_rating,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromModelToResourceResponse(r *models.Resource) *ResourceResponse {
	resp := &ResourceResponse{
		ID:            r.ID,
		UploaderID:    r.UploaderID,
		Title:         r.Title,
		Description:   r.Description,
		FilePath:      r.FilePath,
		ResourceType:  string(r.ResourceType),
		AverageRating: r.AverageRating,
		RatingsCount:  r.RatingsCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Technology != nil {
		resp.Technology = FromModelToTechnologyResponse(r.Technology)
	}
	if r.Mentor != nil {
		resp.Mentor = FromModelToMentorResponse(r.Mentor)
	}
	if r.Team != nil {
		resp.Team = FromModelToTeamResponse(r.Team)
	}
	if r.SkillLevel != nil {
		resp.SkillLevel = FromModelToSkillLevelResponse(r.SkillLevel)
	}
	return resp
}

// FromModelsToResourceResponses converts a slice, annotating is_favorite
// from the caller's favorite id set (nil set means no annotation).
func FromModelsToResourceResponses(resources []models.Resource, favoriteIDs map[uuid.UUID]bool) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for i := range resources {
		resp := FromModelToResourceResponse(&resources[i])
		if favoriteIDs != nil {
			resp.IsFavorite = favoriteIDs[resources[i].ID]
		}
		out = append(out, *resp)
	}
	return out
}
