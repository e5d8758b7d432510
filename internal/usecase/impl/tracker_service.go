package impl

import (
	"context"
	"log/slog"
	"time"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/domain/service"
	"zonewatch/internal/geo"
	"zonewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type trackerService struct {
	alertRepo  repository.AlertPointRepository
	membership usecase.MembershipUsecase
	mute       usecase.MuteUsecase
	registry   repository.RegistryRepository
	history    repository.HistoryRepository
	sink       service.NotificationSink
	source     service.LocationSource
	logger     *slog.Logger
	deviceID   entity.DeviceID
}

// NewTrackerService creates the notification dispatch controller.
func NewTrackerService(
	alertRepo repository.AlertPointRepository,
	membership usecase.MembershipUsecase,
	mute usecase.MuteUsecase,
	registry repository.RegistryRepository,
	history repository.HistoryRepository,
	sink service.NotificationSink,
	source service.LocationSource,
	logger *slog.Logger,
	deviceID entity.DeviceID,
) usecase.TrackerUsecase {
	return &trackerService{
		alertRepo:  alertRepo,
		membership: membership,
		mute:       mute,
		registry:   registry,
		history:    history,
		sink:       sink,
		source:     source,
		logger:     logger,
		deviceID:   deviceID,
	}
}

// Run consumes the sample feed until ctx is canceled or the feed closes.
// Samples are processed one at a time, preserving arrival order.
func (s *trackerService) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case sample, ok := <-s.source.Samples():
			if !ok {
				return nil
			}
			if err := s.OnLocationSample(ctx, sample); err != nil {
				s.logger.Error("failed to evaluate location sample", slog.Any("error", err))
			}
		}
	}
}

// OnLocationSample evaluates one sample against every tracked zone. Each zone
// is evaluated independently; one zone's failure never blocks the rest.
func (s *trackerService) OnLocationSample(ctx context.Context, sample entity.Sample) error {
	points, err := s.alertRepo.List(ctx)
	if err != nil {
		// Unreadable zone set reads as empty; skip this sample.
		s.logger.Warn("alert points unreadable, skipping sample", slog.Any("error", err))

		return nil
	}

	location := orb.Point{sample.Longitude, sample.Latitude}
	for i := range points {
		s.evaluateZone(ctx, location, sample, &points[i])
	}

	return nil
}

func (s *trackerService) evaluateZone(ctx context.Context, location orb.Point, sample entity.Sample, point *entity.AlertPoint) {
	distance := geo.Distance(location, orb.Point{point.Longitude, point.Latitude})
	isInside := distance <= point.Radius

	switch s.membership.Evaluate(ctx, point.ID, isInside) {
	case entity.TransitionEntered:
		s.handleEntry(ctx, sample, point)
	case entity.TransitionExited:
		s.handleExit(ctx, point.ID)
	case entity.TransitionNone:
	}
}

func (s *trackerService) handleEntry(ctx context.Context, sample entity.Sample, point *entity.AlertPoint) {
	// Membership already flipped to inside, so a suppressed entry stays
	// silent until the zone is exited and re-entered.
	if suppressed, reason := s.mute.IsSuppressed(ctx, point.ID); suppressed {
		s.logger.Info("zone entry notification suppressed",
			slog.String("alertPointID", point.ID),
			slog.String("reason", string(reason)))

		return
	}

	handle, err := s.sink.Deliver(ctx, point.Title(), point.Body(), map[string]string{
		"alert_point_id": point.ID,
		"alert_type":     point.AlertType,
	})
	if err != nil {
		// No retry on this sample; the user is only notified again after
		// exiting and re-entering the zone.
		s.logger.Error("failed to deliver zone entry notification",
			slog.String("alertPointID", point.ID),
			slog.Any("error", err))

		return
	}

	if err := s.registry.Register(ctx, entity.ActiveNotification{
		Handle:       handle,
		AlertPointID: point.ID,
		DeliveredAt:  sample.Timestamp,
	}); err != nil {
		s.logger.Error("failed to register delivered notification",
			slog.String("alertPointID", point.ID),
			slog.Any("error", err))
	}

	if err := s.history.Append(ctx, entity.HistoryItem{
		ID:           uuid.New(),
		DeviceID:     s.deviceID,
		AlertPointID: point.ID,
		AlertType:    point.AlertType,
		Street:       point.Street,
		City:         point.City,
		NotifiedAt:   sample.Timestamp,
		CreatedAt:    time.Now(),
	}); err != nil {
		s.logger.Error("failed to append notification history",
			slog.String("alertPointID", point.ID),
			slog.Any("error", err))
	}
}

func (s *trackerService) handleExit(ctx context.Context, alertPointID string) {
	active, err := s.registry.Find(ctx, alertPointID)
	if errors.Is(err, repository.ErrNotificationNotRegistered) {
		// Nothing was delivered for this entry episode; nothing to dismiss.
		return
	}
	if err != nil {
		s.logger.Warn("active notification lookup failed on zone exit",
			slog.String("alertPointID", alertPointID),
			slog.Any("error", err))

		return
	}

	if err := s.sink.Dismiss(ctx, active.Handle); err != nil {
		s.logger.Error("failed to dismiss notification on zone exit",
			slog.String("alertPointID", alertPointID),
			slog.Any("error", err))
	}

	if err := s.registry.Remove(ctx, alertPointID); err != nil {
		s.logger.Error("failed to remove notification registration",
			slog.String("alertPointID", alertPointID),
			slog.Any("error", err))
	}
}

// Reset dismisses every registered notification and wipes membership. It runs
// at cold start and on tracking stop, so no stale notification or membership
// state survives either. A device that restarts while standing inside a zone
// is re-notified on the next sample; that repeat is the accepted price of a
// restart-safe invariant.
func (s *trackerService) Reset(ctx context.Context) error {
	notifications, err := s.registry.List(ctx)
	if err != nil {
		s.logger.Warn("active notification registry unreadable on reset", slog.Any("error", err))
		notifications = nil
	}

	for _, notification := range notifications {
		if err := s.sink.Dismiss(ctx, notification.Handle); err != nil {
			s.logger.Error("failed to dismiss notification on reset",
				slog.String("alertPointID", notification.AlertPointID),
				slog.Any("error", err))
		}
	}

	if err := s.registry.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear notification registry")
	}

	return errors.Wrap(s.membership.Clear(ctx), "clear zone membership")
}

func (s *trackerService) Status(ctx context.Context) (*usecase.TrackerStatus, error) {
	insideIDs, err := s.membership.List(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.registry.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list active notifications")
	}

	settings, err := s.mute.Settings(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.TrackerStatus{
		InsideZoneIDs:       insideIDs,
		ActiveNotifications: len(notifications),
		Mute:                settings,
	}, nil
}
