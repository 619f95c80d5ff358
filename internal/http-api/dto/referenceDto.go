package dto

import (
	"techvault/internal/http-api/models"

	"github.com/google/uuid"
)

type TechnologyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

func FromModelToTechnologyResponse(t *models.Technology) *TechnologyResponse {
	return &TechnologyResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

type MentorResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Username *string   `json:"username"`
}

func FromModelToMentorResponse(m *models.Mentor) *MentorResponse {
	return &MentorResponse{ID: m.ID, Name: m.Name, Role: "Mentor", Username: m.Username}
}

type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

func FromModelToTeamResponse(t *models.Team) *TeamResponse {
	return &TeamResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

type SkillLevelResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Rank int       `json:"rank"`
}

func FromModelToSkillLevelResponse(s *models.SkillLevel) *SkillLevelResponse {
	return &SkillLevelResponse{ID: s.ID, Name: s.Name, Rank: s.Rank}
}
