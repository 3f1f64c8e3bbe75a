package main

import (
	"context"
	"log"
	"os"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/repository/unitofwork"
	"voter-registry-be/internal/service"
	"voter-registry-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a small demo batch through the service layer so the same
// normalization and kinship rules apply as in production traffic.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger("seed.log", false)
	caches := service.NewCaches()
	registryService := service.NewRegistryService(uowFactory, sysLogger, caches)
	familyService := service.NewFamilyService(uowFactory, sysLogger, caches)

	log.Println("Seeding demo registry batch...")

	records := []dto.CreateRecordRequest{
		{
			BatchName: "Demo Batch",
			FileName:  "demo_ward_1",
			RecordFields: dto.RecordFields{
				SerialNo:    "1",
				Name:        "Abdul Karim",
				VoterNo:     "19862693000001",
				FatherName:  "Mohammad Ali",
				Occupation:  "Farmer",
				BirthDate:   "01/01/1975",
				PhoneNumber: "01711000001",
				Gender:      "Male",
			},
		},
		{
			BatchName: "Demo Batch",
			FileName:  "demo_ward_1",
			RecordFields: dto.RecordFields{
				SerialNo:    "2",
				Name:        "Rahim Uddin",
				VoterNo:     "19982693000002",
				FatherName:  "Abdul Karim",
				Occupation:  "Student",
				BirthDate:   "15/06/1998",
				PhoneNumber: "01711000002",
				Gender:      "Male",
			},
		},
	}

	ids := make([]uint, 0, len(records))
	for _, req := range records {
		existing, err := registryService.GetRecordByVoterNo(ctx, req.VoterNo)
		if err != nil {
			log.Fatalf("Error: lookup failed for %s: %v", req.Name, err)
		}
		if existing != nil {
			log.Printf("Record '%s' already exists, skipping...", req.Name)
			ids = append(ids, existing.Id)
			continue
		}

		res, err := registryService.CreateRecord(ctx, &req)
		if err != nil {
			log.Fatalf("Error: create failed for %s: %v", req.Name, err)
		}
		log.Printf("Created record: %s (id=%d)", req.Name, res.Id)
		ids = append(ids, res.Id)
	}

	if len(ids) == 2 {
		// Rahim is Karim's child: link from the child's point of view.
		_, err := familyService.AddExistingMember(ctx, &dto.AddExistingMemberRequest{
			SourceRecordId: ids[1],
			TargetRecordId: ids[0],
			Relationship:   "Father",
		})
		if err != nil {
			log.Fatalf("Error: family link failed: %v", err)
		}
		log.Println("Linked demo family connection")
	}

	log.Println("✅ Seeding completed")
}
