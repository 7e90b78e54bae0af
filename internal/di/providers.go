// Package di assembles the application graph. The wire.go declaration
// is the source of truth; wire_gen.go carries the generated build.
package di

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"postpilot/internal/config"
	"postpilot/internal/dbmongo"
	"postpilot/internal/media"
	"postpilot/internal/notif"
	"postpilot/internal/platform"
	"postpilot/internal/platform/linkedin"
	"postpilot/internal/platform/twitter"
	"postpilot/internal/runlock"
	"postpilot/internal/scheduler"
)

// Application holds the wired components main needs to run and shut
// down the process.
type Application struct {
	Config    *config.Config
	Log       zerolog.Logger
	Mongo     *dbmongo.MongoClient
	Notifs    *notif.NotificationManager
	Scheduler *scheduler.Service
}

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.Logging.Console {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}

func ProvideNotificationManager(cfg *config.Config, events *dbmongo.EventRepository, log zerolog.Logger) *notif.NotificationManager {
	manager := notif.NewNotificationManager(cfg.Scheduler.Workers, log)
	manager.Subscribe(notif.NewLogObserver(log))
	manager.Subscribe(notif.NewStoreObserver(events))
	return manager
}

func ProvideStager(cfg *config.Config, log zerolog.Logger) (*media.S3Stager, error) {
	return media.NewS3Stager(cfg.Media, log)
}

func ProvidePipeline(cfg *config.Config, stager *media.S3Stager, posts *dbmongo.PostRepository, log zerolog.Logger) *media.Pipeline {
	return media.NewPipeline(stager, posts, cfg.Media.LocalRoot, log)
}

// ProvideRegistry builds the platform adapters and registers their
// capabilities. The Twitter adapter is both publisher and metrics
// fetcher; LinkedIn publishes only.
func ProvideRegistry(cfg *config.Config, pipeline *media.Pipeline, log zerolog.Logger) *platform.Registry {
	registry := platform.NewRegistry()

	tw := twitter.NewAdapter(twitter.NewClient(cfg.Twitter, cfg.Scheduler.RatePerSecond), pipeline, log)
	registry.RegisterPublisher(tw)
	registry.RegisterFetcher(tw)

	li := linkedin.NewAdapter(linkedin.NewClient(cfg.Linkedin, cfg.Scheduler.RatePerSecond), pipeline, log)
	registry.RegisterPublisher(li)

	return registry
}

func ProvideCoordinator(
	posts *dbmongo.PostRepository,
	accounts *dbmongo.AccountRepository,
	analytics *dbmongo.AnalyticsRepository,
	registry *platform.Registry,
	pipeline *media.Pipeline,
	notifier *notif.NotificationService,
	log zerolog.Logger,
) *scheduler.Coordinator {
	return scheduler.NewCoordinator(posts, accounts, analytics, registry, pipeline, notifier, log)
}

func ProvideScanner(
	cfg *config.Config,
	posts *dbmongo.PostRepository,
	coordinator *scheduler.Coordinator,
	lock *runlock.RunLock,
	loc *time.Location,
	log zerolog.Logger,
) *scheduler.Scanner {
	maxWait := time.Duration(cfg.Scheduler.LockWaitSecs) * time.Second
	return scheduler.NewScanner(posts, coordinator, lock, cfg.Scheduler.Workers, maxWait, loc, log)
}

func ProvidePoller(
	cfg *config.Config,
	posts *dbmongo.PostRepository,
	accounts *dbmongo.AccountRepository,
	users *dbmongo.UserRepository,
	analytics *dbmongo.AnalyticsRepository,
	registry *platform.Registry,
	lock *runlock.RunLock,
	log zerolog.Logger,
) *scheduler.Poller {
	maxWait := time.Duration(cfg.Scheduler.LockWaitSecs) * time.Second
	return scheduler.NewPoller(posts, accounts, users, analytics, registry, lock, cfg.Scheduler.Workers, maxWait, log)
}
