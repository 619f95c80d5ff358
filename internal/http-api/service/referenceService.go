package service

import (
	"context"
	"errors"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrReferenceNotFound = errors.New("reference entity not found")

type ReferenceService interface {
	ListTechnologies(ctx context.Context) ([]dto.TechnologyResponse, error)
	GetTechnology(ctx context.Context, id uuid.UUID) (*dto.TechnologyResponse, error)
	ListMentors(ctx context.Context) ([]dto.MentorResponse, error)
	GetMentor(ctx context.Context, id uuid.UUID) (*dto.MentorResponse, error)
	ListTeams(ctx context.Context) ([]dto.TeamResponse, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error)
	ListSkillLevels(ctx context.Context) ([]dto.SkillLevelResponse, error)
	GetSkillLevel(ctx context.Context, id uuid.UUID) (*dto.SkillLevelResponse, error)
}

type referenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func (s *referenceService) ListTechnologies(ctx context.Context) ([]dto.TechnologyResponse, error) {
	items, err := s.repo.ListTechnologies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnologyResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.FromModelToTechnologyResponse(&items[i]))
	}
	return out, nil
}

func (s *referenceService) GetTechnology(ctx context.Context, id uuid.UUID) (*dto.TechnologyResponse, error) {
	item, err := s.repo.GetTechnology(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto.FromModelToTechnologyResponse(item), nil
}

func (s *referenceService) ListMentors(ctx context.Context) ([]dto.MentorResponse, error) {
	items, err := s.repo.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MentorResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.FromModelToMentorResponse(&items[i]))
	}
	return out, nil
}

func (s *referenceService) GetMentor(ctx context.Context, id uuid.UUID) (*dto.MentorResponse, error) {
	item, err := s.repo.GetMentor(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto.FromModelToMentorResponse(item), nil
}

func (s *referenceService) ListTeams(ctx context.Context) ([]dto.TeamResponse, error) {
	items, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.FromModelToTeamResponse(&items[i]))
	}
	return out, nil
}

func (s *referenceService) GetTeam(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error) {
	item, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto.FromModelToTeamResponse(item), nil
}

func (s *referenceService) ListSkillLevels(ctx context.Context) ([]dto.SkillLevelResponse, error) {
	items, err := s.repo.ListSkillLevels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SkillLevelResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.FromModelToSkillLevelResponse(&items[i]))
	}
	return out, nil
}

func (s *referenceService) GetSkillLevel(ctx context.Context, id uuid.UUID) (*dto.SkillLevelResponse, error) {
	item, err := s.repo.GetSkillLevel(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto.FromModelToSkillLevelResponse(item), nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReferenceNotFound
	}
	return err
}
