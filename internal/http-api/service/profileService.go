package service

import (
	"context"
	"sort"
	"strings"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"
	"techvault/internal/http-api/repository"

	"github.com/google/uuid"
)

type ProfileService interface {
	GetProfile(ctx context.Context, user *models.User) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, user *models.User, data *dto.UpdateProfileDTO) (*dto.UserResponse, error)
}

type profileService struct {
	userRepo      repository.UserRepository
	resourceRepo  repository.ResourceRepository
	ratingRepo    repository.RatingRepository
	favoriteRepo  repository.FavoriteRepository
	referenceRepo repository.ReferenceRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	resourceRepo repository.ResourceRepository,
	ratingRepo repository.RatingRepository,
	favoriteRepo repository.FavoriteRepository,
	referenceRepo repository.ReferenceRepository,
) ProfileService {
	return &profileService{
		userRepo:      userRepo,
		resourceRepo:  resourceRepo,
		ratingRepo:    ratingRepo,
		favoriteRepo:  favoriteRepo,
		referenceRepo: referenceRepo,
	}
}

// GetProfile assembles the profile view: counters, skill tags derived from
// the technologies of favorited resources, and mentor suggestions
// personalized from favorites (falling back to the full mentor list when the
// user has favorited nothing with a mentor attached). Best-effort
// convenience data layered on the favorites ledger, not rating logic.
func (s *profileService) GetProfile(ctx context.Context, user *models.User) (*dto.ProfileResponse, error) {
	uploaded, err := s.resourceRepo.CountByUploader(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	ratingsGiven, err := s.ratingRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var teamCount int64
	if user.TeamID != nil {
		teamCount, err = s.userRepo.CountByTeam(ctx, *user.TeamID)
		if err != nil {
			return nil, err
		}
	}

	favorites, err := s.favoriteRepo.ListResources(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resourcesCount := uploaded
	if resourcesCount == 0 {
		resourcesCount = int64(len(favorites))
	}

	skillSet := make(map[string]bool)
	for _, r := range favorites {
		if r.Technology != nil && r.Technology.Name != "" {
			skillSet[r.Technology.Name] = true
		}
	}
	skills := make([]string, 0, len(skillSet))
	for name := range skillSet {
		skills = append(skills, name)
	}
	sort.Slice(skills, func(i, j int) bool {
		return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
	})

	mentors, personalized, err := s.suggestMentors(ctx, favorites)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		User: *dto.FromModelToUserResponse(user),
		Stats: dto.ProfileStats{
			ResourcesCount: resourcesCount,
			RatingsCount:   ratingsGiven,
			TeamCount:      teamCount,
		},
		Skills:              skills,
		Mentors:             mentors,
		MentorsPersonalized: personalized,
	}, nil
}

// suggestMentors picks mentors attached to favorited resources, unique by
// id in favorites order; when none exist the full mentor list is returned.
func (s *profileService) suggestMentors(ctx context.Context, favorites []models.Resource) ([]dto.MentorResponse, bool, error) {
	seen := make(map[uuid.UUID]bool)
	var personalized []dto.MentorResponse
	for _, r := range favorites {
		if r.Mentor != nil && !seen[r.Mentor.ID] {
			seen[r.Mentor.ID] = true
			personalized = append(personalized, *dto.FromModelToMentorResponse(r.Mentor))
		}
	}
	if len(personalized) > 0 {
		return personalized, true, nil
	}

	all, err := s.referenceRepo.ListMentors(ctx)
	if err != nil {
		return nil, false, err
	}
	mentors := make([]dto.MentorResponse, 0, len(all))
	for i := range all {
		mentors = append(mentors, *dto.FromModelToMentorResponse(&all[i]))
	}
	return mentors, false, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, user *models.User, data *dto.UpdateProfileDTO) (*dto.UserResponse, error) {
	if data.Username != nil {
		user.Username = data.Username
	}
	if data.FirstName != nil {
		user.FirstName = data.FirstName
	}
	if data.LastName != nil {
		user.LastName = data.LastName
	}
	if data.TeamID != nil {
		user.TeamID = data.TeamID
	}
	if data.SkillLevelID != nil {
		user.SkillLevelID = data.SkillLevelID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}
