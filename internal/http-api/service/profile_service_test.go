package service

import (
	"context"
	"testing"

	"techvault/internal/http-api/dto"
	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileTestService(userRepo *MockUserRepository, resourceRepo *MockResourceRepository,
	ratingRepo *MockRatingRepository, favoriteRepo *MockFavoriteRepository,
	referenceRepo *MockReferenceRepository) ProfileService {
	return NewProfileService(userRepo, resourceRepo, ratingRepo, favoriteRepo, referenceRepo)
}

func favoriteWithTech(techName string, mentor *models.Mentor) models.Resource {
	r := makeResource("fav " + techName)
	r.Technology = &models.Technology{ID: uuid.New(), Name: techName}
	r.Mentor = mentor
	return r
}

func TestGetProfile_SkillsAndPersonalizedMentors(t *testing.T) {
	userRepo := new(MockUserRepository)
	resourceRepo := new(MockResourceRepository)
	ratingRepo := new(MockRatingRepository)
	favoriteRepo := new(MockFavoriteRepository)
	referenceRepo := new(MockReferenceRepository)
	svc := newProfileTestService(userRepo, resourceRepo, ratingRepo, favoriteRepo, referenceRepo)

	user := &models.User{ID: uuid.New(), TelegramID: 1001}
	mentor := &models.Mentor{ID: uuid.New(), Name: "Lead One"}

	// Duplicate technology and mentor across favorites must collapse.
	favorites := []models.Resource{
		favoriteWithTech("kubernetes", mentor),
		favoriteWithTech("Go", mentor),
		favoriteWithTech("Go", nil),
	}

	resourceRepo.On("CountByUploader", mock.Anything, user.ID).Return(int64(2), nil)
	ratingRepo.On("CountByUser", mock.Anything, user.ID).Return(int64(7), nil)
	favoriteRepo.On("ListResources", mock.Anything, user.ID).Return(favorites, nil)

	profile, err := svc.GetProfile(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), profile.Stats.ResourcesCount)
	assert.Equal(t, int64(7), profile.Stats.RatingsCount)
	assert.Zero(t, profile.Stats.TeamCount)
	assert.Equal(t, []string{"Go", "kubernetes"}, profile.Skills)
	assert.True(t, profile.MentorsPersonalized)
	if assert.Len(t, profile.Mentors, 1) {
		assert.Equal(t, mentor.ID, profile.Mentors[0].ID)
	}
	referenceRepo.AssertNotCalled(t, "ListMentors", mock.Anything)
}

func TestGetProfile_Fallbacks(t *testing.T) {
	userRepo := new(MockUserRepository)
	resourceRepo := new(MockResourceRepository)
	ratingRepo := new(MockRatingRepository)
	favoriteRepo := new(MockFavoriteRepository)
	referenceRepo := new(MockReferenceRepository)
	svc := newProfileTestService(userRepo, resourceRepo, ratingRepo, favoriteRepo, referenceRepo)

	teamID := uuid.New()
	user := &models.User{ID: uuid.New(), TelegramID: 1002, TeamID: &teamID}

	// No uploads, no mentor attached anywhere: counts fall back to the
	// favorites list and mentors to the full roster.
	favorites := []models.Resource{favoriteWithTech("Figma", nil)}

	resourceRepo.On("CountByUploader", mock.Anything, user.ID).Return(int64(0), nil)
	ratingRepo.On("CountByUser", mock.Anything, user.ID).Return(int64(0), nil)
	userRepo.On("CountByTeam", mock.Anything, teamID).Return(int64(9), nil)
	favoriteRepo.On("ListResources", mock.Anything, user.ID).Return(favorites, nil)
	referenceRepo.On("ListMentors", mock.Anything).Return([]models.Mentor{
		{ID: uuid.New(), Name: "Lead A"},
		{ID: uuid.New(), Name: "Lead B"},
	}, nil)

	profile, err := svc.GetProfile(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), profile.Stats.ResourcesCount)
	assert.Equal(t, int64(9), profile.Stats.TeamCount)
	assert.False(t, profile.MentorsPersonalized)
	assert.Len(t, profile.Mentors, 2)
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newProfileTestService(userRepo, new(MockResourceRepository),
		new(MockRatingRepository), new(MockFavoriteRepository), new(MockReferenceRepository))

	oldName := "before"
	user := &models.User{ID: uuid.New(), TelegramID: 1003, Username: &oldName}
	userRepo.On("Update", mock.Anything, user).Return(nil)

	teamID := uuid.New()
	resp, err := svc.UpdateProfile(context.Background(), user, &dto.UpdateProfileDTO{TeamID: &teamID})

	assert.NoError(t, err)
	// Untouched fields survive the patch.
	if assert.NotNil(t, resp.Username) {
		assert.Equal(t, "before", *resp.Username)
	}
	if assert.NotNil(t, resp.TeamID) {
		assert.Equal(t, teamID, *resp.TeamID)
	}
	userRepo.AssertExpectations(t)
}
