package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"techvault/database"
	"techvault/internal/config"
	"techvault/internal/http-api/models"

	"gorm.io/gorm"
)

// seedFile is the JSON shape consumed by this tool. Reference tables are
// read-only for the API, so this is the only write path for them.
type seedFile struct {
	Technologies []struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	} `json:"technologies"`
	Mentors []struct {
		Name     string  `json:"name"`
		Email    *string `json:"email"`
		Username *string `json:"username"`
	} `json:"mentors"`
	Teams []struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	} `json:"teams"`
	SkillLevels []struct {
		Name string `json:"name"`
		Rank int    `json:"rank"`
	} `json:"skill_levels"`
}

func main() {
	log.Println("Starting reference data seed...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "seed_data.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log.Printf("Reading data from %s...", path)
	data, err := readSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	// All or nothing: a partial reference set is worse than none.
	err = db.Transaction(func(tx *gorm.DB) error {
		counts := map[string]int{}

		for _, t := range data.Technologies {
			if err := upsertByName(tx, &models.Technology{Name: t.Name, Description: t.Description}, t.Name); err != nil {
				return fmt.Errorf("technology %q: %w", t.Name, err)
			}
			counts["technologies"]++
		}
		for _, m := range data.Mentors {
			if err := upsertByName(tx, &models.Mentor{Name: m.Name, Email: m.Email, Username: m.Username}, m.Name); err != nil {
				return fmt.Errorf("mentor %q: %w", m.Name, err)
			}
			counts["mentors"]++
		}
		for _, t := range data.Teams {
			if err := upsertByName(tx, &models.Team{Name: t.Name, Description: t.Description}, t.Name); err != nil {
				return fmt.Errorf("team %q: %w", t.Name, err)
			}
			counts["teams"]++
		}
		for _, s := range data.SkillLevels {
			if err := upsertByName(tx, &models.SkillLevel{Name: s.Name, Rank: s.Rank}, s.Name); err != nil {
				return fmt.Errorf("skill level %q: %w", s.Name, err)
			}
			counts["skill_levels"]++
		}

		log.Printf("Seeded %d technologies, %d mentors, %d teams, %d skill levels",
			counts["technologies"], counts["mentors"], counts["teams"], counts["skill_levels"])
		return nil
	})
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Reference data seed completed")
}

func readSeedFile(path string) (*seedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var data seedFile
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return &data, nil
}

// upsertByName matches rows by name so reruns update in place instead of
// duplicating.
func upsertByName[T any](tx *gorm.DB, row *T, name string) error {
	var existing T
	err := tx.Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		return tx.Model(&existing).Updates(row).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Create(row).Error
	default:
		return err
	}
}
