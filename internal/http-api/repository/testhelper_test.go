package repository

import (
	"fmt"
	"testing"
	"time"

	"techvault/internal/http-api/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory sqlite database with the full
// schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Technology{},
		&models.Mentor{},
		&models.Team{},
		&models.SkillLevel{},
		&models.User{},
		&models.Resource{},
		&models.Rating{},
		&models.Favorite{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, teamID *uuid.UUID) *models.User {
	t.Helper()
	user := &models.User{
		TelegramID: time.Now().UnixNano(),
		TeamID:     teamID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestResource(t *testing.T, db *gorm.DB, uploader *models.User, title string, createdAt time.Time) *models.Resource {
	t.Helper()
	resource := &models.Resource{
		UploaderID:   uploader.ID,
		Title:        title,
		FilePath:     "/files/" + title,
		ResourceType: models.ResourceTypeDoc,
	}
	if err := db.Create(resource).Error; err != nil {
		t.Fatalf("create test resource: %v", err)
	}
	// Backdate created_at for deterministic ordering tests.
	if err := db.Model(resource).UpdateColumn("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate test resource: %v", err)
	}
	resource.CreatedAt = createdAt
	return resource
}
