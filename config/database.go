package config

import (
	"os"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

func Connect() error {
	var err error
	dbURL := os.Getenv("DB_URL")
	// TranslateError maps driver unique-constraint failures onto
	// gorm.ErrDuplicatedKey so the store can classify them
	if dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{TranslateError: true})
	} else {
		// Local development falls back to a file-backed sqlite database
		Database, err = gorm.Open(sqlite.Open("nexus.db"), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.User{}, &models.Board{}, &models.List{}, &models.Card{}, &models.Comment{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
