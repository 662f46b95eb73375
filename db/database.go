package db

import (
	"fmt"
	"log"

	"github.com/prefeitura-digital/cms-go/config"
	"github.com/prefeitura-digital/cms-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'editor'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE content_status AS ENUM ('draft', 'published'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE submission_status AS ENUM ('pending', 'approved', 'rejected'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Page{},
		&models.Event{},
		&models.Gallery{},
		&models.GalleryImage{},
		&models.MediaFile{},
		&models.Secretaria{},
		&models.CityService{},
		&models.Setting{},
		&models.Form{},
		&models.FormSubmission{},
		&models.AuditLog{},
	)
}

// InitWithGormDB wires an externally managed connection, used by the
// integration tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
	createEnums()
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
}
