package database

import (
	"fmt"
	"log"
	"os"

	"creator-app/internal/domain/billing"
	"creator-app/internal/domain/biopage"
	"creator-app/internal/domain/ideas"
	"creator-app/internal/domain/inspirations"
	"creator-app/internal/domain/leadmagnets"
	"creator-app/internal/domain/planning"
	"creator-app/internal/domain/plans"
	"creator-app/internal/domain/series"
	"creator-app/internal/domain/templates"
	"creator-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Split out of InitDB
// so tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// planning board
		&planning.Workflow{},
		&planning.WorkflowColumn{},
		&planning.ContentCard{},

		// capture & library
		&ideas.Idea{},
		&series.Series{},
		&templates.ContentTemplate{},
		&inspirations.Inspiration{},

		// public page
		&biopage.BioLink{},
		&leadmagnets.LeadMagnet{},
		&leadmagnets.Lead{},
	)
}
