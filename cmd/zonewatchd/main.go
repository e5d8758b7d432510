package main

import (
	"context"
	"log/slog"
	"os"

	"zonewatch/config"
	"zonewatch/internal/delivery"
	"zonewatch/internal/delivery/http"
	"zonewatch/internal/delivery/http/router/handler"
	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/service"
	"zonewatch/internal/infra/alertpoint"
	"zonewatch/internal/infra/location"
	logs "zonewatch/internal/infra/log"
	"zonewatch/internal/infra/notification"
	"zonewatch/internal/infra/persistence/kv"
	"zonewatch/internal/infra/persistence/kvrepo"
	"zonewatch/internal/usecase"
	"zonewatch/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startTracker,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newKVStore,
		newLocationFeed,
		newDeviceID,
	)
}

// newKVStore opens the durable document store backing all persisted state.
func newKVStore(lc fx.Lifecycle, cfg *config.Config) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)
	if cfg.Storage.InMemory {
		store = kv.NewMemory()
	} else {
		store, err = kv.NewSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, errors.Wrap(err, "open storage")
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func newLocationFeed(cfg *config.Config) *location.Feed {
	return location.NewFeed(cfg.Tracker.SampleBuffer)
}

func newDeviceID(ctx context.Context, store kv.Store) (entity.DeviceID, error) {
	return kvrepo.EnsureDeviceID(ctx, store)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvrepo.NewAlertPointRepository,
			kvrepo.NewMembershipRepository,
			kvrepo.NewMuteSettingsRepository,
			kvrepo.NewRegistryRepository,
			kvrepo.NewHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationSink,
			newAlertPointSource,
			newLocationSource,
		),
	)
}

// newNotificationSink creates the notification delivery capability. Without
// Firebase configuration deliveries are only logged.
func newNotificationSink(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationSink, error) {
	if cfg.Firebase == nil {
		return notification.NewSlogSink(logger), nil
	}

	sink, err := notification.NewFCMSink(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken)
	if err != nil {
		return nil, errors.Wrap(err, "create FCM sink")
	}

	return sink, nil
}

// newAlertPointSource creates the remote zone-set importer. The source is
// optional; sync requests without one are rejected by the usecase.
func newAlertPointSource(cfg *config.Config) service.AlertPointSource {
	if cfg.AlertSource == nil {
		return nil
	}

	return alertpoint.NewSheetSource(cfg.AlertSource.URL, cfg.AlertSource.FetchTimeout)
}

func newLocationSource(feed *location.Feed) service.LocationSource {
	return feed
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMembershipService,
			impl.NewMuteService,
			impl.NewTrackerService,
			impl.NewAlertPointService,
			impl.NewHistoryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrackerHandler,
			handler.NewMuteHandler,
			handler.NewHistoryHandler,
			handler.NewAlertPointHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type trackerParams struct {
	fx.In
	fx.Lifecycle

	Tracker usecase.TrackerUsecase
	Feed    *location.Feed
	Logger  *slog.Logger
}

// startTracker resets tracking state at cold start and runs the sample loop.
// The reset guarantees no stale notification or membership survives a
// restart; the cost is a repeat notification when the device relaunches
// inside a zone.
func startTracker(params trackerParams) {
	runCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Tracker.Reset(ctx); err != nil {
				return errors.Wrap(err, "reset tracker state")
			}

			go func() {
				if err := params.Tracker.Run(runCtx); err != nil {
					params.Logger.Error("tracker loop stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Feed.Close()
			cancel()

			// Stopping tracking must not leave residual notifications.
			return params.Tracker.Reset(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
