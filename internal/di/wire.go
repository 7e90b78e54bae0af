//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"postpilot/internal/config"
	"postpilot/internal/dbmongo"
	"postpilot/internal/notif"
	"postpilot/internal/runlock"
	"postpilot/internal/scheduler"
)

// InitializeApplication is the wire declaration; the real body lives in
// wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		ProvideLogger,
		dbmongo.NewMongoConnection,
		dbmongo.NewPostRepository,
		dbmongo.NewAccountRepository,
		dbmongo.NewUserRepository,
		dbmongo.NewAnalyticsRepository,
		dbmongo.NewEventRepository,
		ProvideNotificationManager,
		notif.NewNotificationService,
		ProvideStager,
		ProvidePipeline,
		ProvideRegistry,
		runlock.New,
		scheduler.Location,
		ProvideCoordinator,
		ProvideScanner,
		ProvidePoller,
		scheduler.NewService,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
