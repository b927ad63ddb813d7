//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"ohd/internal"
	"ohd/internal/controllers"
	"ohd/internal/providers"
	"ohd/internal/services"
	"ohd/internal/storage"
	"ohd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewScheduleService,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

// InitScheduleService builds the schedule store with its persisted state
// loaded, without starting the HTTP server.
func InitScheduleService(cfg *structures.CliFlags) (services.ScheduleServiceInterface, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		services.NewScheduleService,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,
		restoredService,
	)

	return nil, nil
}
