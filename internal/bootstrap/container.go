package bootstrap

import (
	"voter-registry-be/internal/config"
	"voter-registry-be/internal/controller"
	"voter-registry-be/internal/pkg/logger"
	"voter-registry-be/internal/repository/unitofwork"
	"voter-registry-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	RegistryController controller.IRegistryController
	EventController    controller.IEventController
	FamilyController   controller.IFamilyController
	StatsController    controller.IStatsController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// One cache set shared by every service: any write flushes all reads.
	caches := service.NewCaches()

	// Services
	registryService := service.NewRegistryService(uowFactory, sysLogger, caches)
	eventService := service.NewEventService(uowFactory, sysLogger, caches)
	familyService := service.NewFamilyService(uowFactory, sysLogger, caches)
	statsService := service.NewStatsService(uowFactory)

	return &Container{
		RegistryController: controller.NewRegistryController(registryService),
		EventController:    controller.NewEventController(eventService),
		FamilyController:   controller.NewFamilyController(familyService),
		StatsController:    controller.NewStatsController(statsService, sysLogger),

		Logger: sysLogger,
	}
}
