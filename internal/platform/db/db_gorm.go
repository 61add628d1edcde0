package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	applicationentity "jobboard_backend/internal/feature/application/domain/entity"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authentity "jobboard_backend/internal/feature/auth/domain/entity"
	companyentity "jobboard_backend/internal/feature/company/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
	profileentity "jobboard_backend/internal/feature/profile/domain/entity"
)

// Config holds the database connection parameters, usually read from the environment.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// ConfigFromEnv builds a Config from the DB_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN assembles a PostgreSQL DSN string from the config.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

// OpenDB connects to PostgreSQL, retrying for up to 60 seconds so the server
// can come up while the database container is still starting.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(ConfigFromEnv())

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Profile, Job など）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&profileentity.Profile{},
			&companyentity.Company{},
			&companyentity.GalleryImage{},
			&jobentity.Job{},
			&applicationentity.Application{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
