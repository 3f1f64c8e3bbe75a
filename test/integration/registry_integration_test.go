package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"voter-registry-be/internal/dto"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/repository/implementation"
	"voter-registry-be/internal/repository/unitofwork"
	"voter-registry-be/internal/service"
	"voter-registry-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// setupServices connects to the test database and wires the full service
// stack, skipping the test when no connection string is configured.
func setupServices(t *testing.T) (*gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return gormDB, unitofwork.NewRepositoryFactory(gormDB)
}

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewZapLogger(t.TempDir()+"/test.log", false)
}

func TestRegistryConnection(t *testing.T) {
	gormDB, uowFactory := setupServices(t)

	uow := uowFactory.NewUnitOfWork(context.Background())
	assert.NotNil(t, uow.BatchRepository())
	assert.NotNil(t, uow.RecordRepository())
	assert.NotNil(t, uow.EventRepository())
	assert.NotNil(t, uow.FamilyConnectionRepository())
	assert.NotNil(t, uow.StatsRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")
}

func TestRecordLifecycle(t *testing.T) {
	_, uowFactory := setupServices(t)

	registryService := service.NewRegistryService(uowFactory, testLogger(t), service.NewCaches())
	ctx := context.Background()

	batchName := "Integration Batch " + uuid.New().String()
	voterNo := "it-" + uuid.New().String()

	created, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
		BatchName: batchName,
		FileName:  "integration_file",
		RecordFields: dto.RecordFields{
			Name:           "Integration Voter",
			VoterNo:        voterNo,
			PhoneNumber:    "01712345678",
			WhatsappNumber: "01812345678",
			Gender:         "Male",
		},
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)

	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		_ = uow.BatchRepository().Delete(ctx, created.BatchId)
	})

	t.Run("Links Are Normalized On Write", func(t *testing.T) {
		record, err := registryService.GetRecordByID(ctx, created.Id)
		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.Equal(t, "tel:01712345678", record.PhoneNumber)
		assert.Equal(t, "https://wa.me/01812345678", record.WhatsappNumber)
		assert.Equal(t, implementation.DefaultPhotoLink, record.PhotoLink)
		assert.Equal(t, "Regular", record.RelationshipStatus)
		assert.Equal(t, batchName, record.BatchName)
	})

	t.Run("Lookup By Voter Number", func(t *testing.T) {
		record, err := registryService.GetRecordByVoterNo(ctx, voterNo)
		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.Equal(t, created.Id, record.Id)
	})

	t.Run("Update Preserves Batch Assignment", func(t *testing.T) {
		updated, err := registryService.UpdateRecord(ctx, &dto.UpdateRecordRequest{
			Id: created.Id,
			RecordFields: dto.RecordFields{
				Name:       "Integration Voter Renamed",
				VoterNo:    voterNo,
				Occupation: "Teacher",
			},
		})
		assert.NoError(t, err)

		record, err := registryService.GetRecordByID(ctx, updated.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Integration Voter Renamed", record.Name)
		assert.Equal(t, "Teacher", record.Occupation)
		assert.Equal(t, batchName, record.BatchName)
	})

	t.Run("File Listing Contains Upload", func(t *testing.T) {
		files, err := registryService.BatchFiles(ctx, created.BatchId)
		assert.NoError(t, err)
		assert.Contains(t, files.FileNames, "integration_file")
	})
}

func TestSearchSemantics(t *testing.T) {
	_, uowFactory := setupServices(t)

	registryService := service.NewRegistryService(uowFactory, testLogger(t), service.NewCaches())
	ctx := context.Background()

	batchName := "Search Batch " + uuid.New().String()
	marker := uuid.New().String()

	fixtures := []dto.RecordFields{
		{Name: "Hasan " + marker, VoterNo: "sv1-" + marker, FatherName: "Jamal", Gender: "Male"},
		{Name: "Hasina", VoterNo: "sv2-" + marker, FatherName: "Hasan " + marker, Gender: "Female"},
	}
	var batchID uint
	for _, fields := range fixtures {
		res, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
			BatchName:    batchName,
			FileName:     "search_file",
			RecordFields: fields,
		})
		assert.NoError(t, err)
		batchID = res.BatchId
	}

	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		_ = uow.BatchRepository().Delete(ctx, batchID)
	})

	t.Run("Same Term For Name And Voter No Widens To OR", func(t *testing.T) {
		res, err := registryService.SearchRecords(ctx, &dto.SearchRecordsRequest{
			Name:    marker,
			VoterNo: marker,
		})
		assert.NoError(t, err)
		// Both fixtures carry the marker in either name or voter number.
		assert.Len(t, res, 2)
	})

	t.Run("Distinct Fields Narrow Conjunctively", func(t *testing.T) {
		res, err := registryService.SearchRecords(ctx, &dto.SearchRecordsRequest{
			Name:   "Hasan " + marker,
			Gender: "Female",
		})
		assert.NoError(t, err)
		assert.Len(t, res, 0)
	})

	t.Run("Gender All Disables The Filter", func(t *testing.T) {
		res, err := registryService.SearchRecords(ctx, &dto.SearchRecordsRequest{
			Name:    marker,
			VoterNo: marker,
			Gender:  "all",
		})
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})
}

func TestEventAssignment(t *testing.T) {
	_, uowFactory := setupServices(t)

	sysLogger := testLogger(t)
	caches := service.NewCaches()
	registryService := service.NewRegistryService(uowFactory, sysLogger, caches)
	eventService := service.NewEventService(uowFactory, sysLogger, caches)
	ctx := context.Background()

	eventName := "Integration Rally " + uuid.New().String()
	event, err := eventService.EnsureEvent(ctx, &dto.EnsureEventRequest{Name: eventName})
	assert.NoError(t, err)

	// Ensure is idempotent by name.
	again, err := eventService.EnsureEvent(ctx, &dto.EnsureEventRequest{Name: eventName})
	assert.NoError(t, err)
	assert.Equal(t, event.Id, again.Id)

	record, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
		BatchName: "Event Batch " + uuid.New().String(),
		RecordFields: dto.RecordFields{
			Name:    "Event Attendee",
			VoterNo: "ev-" + uuid.New().String(),
		},
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		_ = uow.BatchRepository().Delete(ctx, record.BatchId)
		_ = uow.EventRepository().Delete(ctx, event.Id)
	})

	err = registryService.AssignEvents(ctx, &dto.AssignEventsRequest{
		RecordId: record.Id,
		EventIds: []uint{event.Id},
	})
	assert.NoError(t, err)

	hydrated, err := registryService.GetRecordByID(ctx, record.Id)
	assert.NoError(t, err)
	assert.Contains(t, hydrated.Events, eventName)

	// Replacing with an empty set clears the assignment.
	err = registryService.AssignEvents(ctx, &dto.AssignEventsRequest{
		RecordId: record.Id,
		EventIds: []uint{},
	})
	assert.NoError(t, err)

	hydrated, err = registryService.GetRecordByID(ctx, record.Id)
	assert.NoError(t, err)
	assert.Empty(t, hydrated.Events)
}

func TestRelationshipStatusManagement(t *testing.T) {
	_, uowFactory := setupServices(t)

	registryService := service.NewRegistryService(uowFactory, testLogger(t), service.NewCaches())
	ctx := context.Background()

	status := "Member-" + uuid.New().String()

	record, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
		BatchName: "Status Batch " + uuid.New().String(),
		RecordFields: dto.RecordFields{
			Name:    "Status Subject",
			VoterNo: "st-" + uuid.New().String(),
		},
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		_ = uow.BatchRepository().Delete(ctx, record.BatchId)
	})

	// Fresh records start out Regular.
	loaded, err := registryService.GetRecordByID(ctx, record.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Regular", loaded.RelationshipStatus)

	err = registryService.UpdateRelationshipStatus(ctx, &dto.UpdateRelationshipStatusRequest{
		RecordId: record.Id,
		Status:   status,
	})
	assert.NoError(t, err)

	loaded, err = registryService.GetRecordByID(ctx, record.Id)
	assert.NoError(t, err)
	assert.Equal(t, status, loaded.RelationshipStatus)

	byStatus, err := registryService.RecordsByStatus(ctx, status)
	assert.NoError(t, err)
	assert.Len(t, byStatus, 1)
	assert.Equal(t, record.Id, byStatus[0].Id)

	// Only the status column changes; the rest of the record is untouched.
	assert.Equal(t, "Status Subject", byStatus[0].Name)
}

func TestAgeBucketOrdering(t *testing.T) {
	_, uowFactory := setupServices(t)

	registryService := service.NewRegistryService(uowFactory, testLogger(t), service.NewCaches())
	statsService := service.NewStatsService(uowFactory)
	ctx := context.Background()

	batchName := "Age Batch " + uuid.New().String()
	var batchID uint
	for _, age := range []int{25, 105} {
		record, err := registryService.CreateRecord(ctx, &dto.CreateRecordRequest{
			BatchName: batchName,
			RecordFields: dto.RecordFields{
				Name:    "Bucket Subject",
				VoterNo: "ab-" + uuid.New().String(),
			},
		})
		assert.NoError(t, err)
		batchID = record.BatchId

		err = registryService.UpdateRecordAge(ctx, &dto.UpdateRecordAgeRequest{
			RecordId: record.Id,
			Age:      age,
		})
		assert.NoError(t, err)
	}

	t.Cleanup(func() {
		uow := uowFactory.NewUnitOfWork(ctx)
		_ = uow.BatchRepository().Delete(ctx, batchID)
	})

	dashboard, err := statsService.Dashboard(ctx)
	assert.NoError(t, err)

	idx := func(label string) int {
		for i, bucket := range dashboard.AgeDistribution {
			if bucket.Label == label {
				return i
			}
		}
		return -1
	}

	young, old := idx("20-29"), idx("100-109")
	assert.NotEqual(t, -1, young)
	assert.NotEqual(t, -1, old)
	// Buckets sort by age, not label text ("100-109" would sort before
	// "20-29" lexically).
	assert.Less(t, young, old)
}
