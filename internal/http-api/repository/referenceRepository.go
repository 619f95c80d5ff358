package repository

import (
	"context"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceRepository reads the reference tables (technologies, mentors,
// teams, skill levels). The API never writes them; they are seeded out of
// band.
type ReferenceRepository interface {
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
	GetTechnology(ctx context.Context, id uuid.UUID) (*models.Technology, error)
	ListMentors(ctx context.Context) ([]models.Mentor, error)
	GetMentor(ctx context.Context, id uuid.UUID) (*models.Mentor, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListSkillLevels(ctx context.Context) ([]models.SkillLevel, error)
	GetSkillLevel(ctx context.Context, id uuid.UUID) (*models.SkillLevel, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	var items []models.Technology
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *referenceRepository) GetTechnology(ctx context.Context, id uuid.UUID) (*models.Technology, error) {
	var item models.Technology
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *referenceRepository) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	var items []models.Mentor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *referenceRepository) GetMentor(ctx context.Context, id uuid.UUID) (*models.Mentor, error) {
	var item models.Mentor
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *referenceRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	var items []models.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *referenceRepository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var item models.Team
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *referenceRepository) ListSkillLevels(ctx context.Context) ([]models.SkillLevel, error) {
	var items []models.SkillLevel
	err := r.db.WithContext(ctx).Order("rank ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *referenceRepository) GetSkillLevel(ctx context.Context, id uuid.UUID) (*models.SkillLevel, error) {
	var item models.SkillLevel
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
