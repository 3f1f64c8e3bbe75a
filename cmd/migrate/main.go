package main

import (
	"log"
	"os"

	"voter-registry-be/internal/model"
	"voter-registry-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. AutoMigrate All Models
	log.Println("Step 1: Running AutoMigrate for registry tables...")

	models := []interface{}{
		&model.Batch{},
		&model.Record{},
		&model.Event{},
		&model.RecordEvent{},
		&model.FamilyConnection{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: supporting indexes AutoMigrate does not cover
	log.Println("Step 2: Creating supporting indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_records_name ON records (name);`,
		`CREATE INDEX IF NOT EXISTS idx_records_voter_no ON records (voter_no);`,
		`CREATE INDEX IF NOT EXISTS idx_family_connections_source ON family_connections (source_record_id);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
