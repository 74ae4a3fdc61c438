package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"plateful-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Profile{}); err != nil {
		log.Fatalf("Error migrating profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Like{}); err != nil {
		log.Fatalf("Error migrating like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comment{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
