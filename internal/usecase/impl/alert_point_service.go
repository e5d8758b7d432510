package impl

import (
	"context"
	"log/slog"

	"zonewatch/config"
	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/repository"
	"zonewatch/internal/domain/service"
	"zonewatch/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrSourceNotConfigured is returned when a sync is requested without a
// configured alert-point source.
var ErrSourceNotConfigured = errors.New("alert point source not configured")

type alertPointService struct {
	repo     repository.AlertPointRepository
	source   service.AlertPointSource
	config   *config.Config
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAlertPointService creates the alert-point import service.
func NewAlertPointService(
	repo repository.AlertPointRepository,
	source service.AlertPointSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertPointUsecase {
	// If Tracker is not configured, provide a default configuration
	if cfg.Tracker == nil {
		cfg.Tracker = &config.TrackerConfig{
			DefaultRadius: 200,  // Default to 200m zones
			MaxRadius:     5000, // Cap imported radii at 5km
		}
	}

	return &alertPointService{
		repo:     repo,
		source:   source,
		config:   cfg,
		validate: validator.New(),
		logger:   logger,
	}
}

// Sync replaces the stored zone set with the remote one. Invalid rows are
// skipped, not fatal; a remote sheet with one bad row still imports the rest.
func (s *alertPointService) Sync(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, ErrSourceNotConfigured
	}

	fetched, err := s.source.FetchAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "fetch alert points")
	}

	points := make([]entity.AlertPoint, 0, len(fetched))
	for _, point := range fetched {
		s.applyRadiusBounds(&point)

		if err := s.validate.Struct(&point); err != nil {
			s.logger.Warn("skipping invalid alert point",
				slog.String("alertPointID", point.ID),
				slog.Any("error", err))

			continue
		}

		points = append(points, point)
	}

	if err := s.repo.ReplaceAll(ctx, points); err != nil {
		return 0, errors.Wrap(err, "replace alert points")
	}

	s.logger.Info("alert points synced",
		slog.Int("imported", len(points)),
		slog.Int("skipped", len(fetched)-len(points)))

	return len(points), nil
}

// applyRadiusBounds fills a missing radius with the configured default and
// caps oversized ones.
func (s *alertPointService) applyRadiusBounds(point *entity.AlertPoint) {
	tracker := s.config.Tracker
	if point.Radius <= 0 && tracker.DefaultRadius > 0 {
		point.Radius = tracker.DefaultRadius
	}
	if tracker.MaxRadius > 0 && point.Radius > tracker.MaxRadius {
		point.Radius = tracker.MaxRadius
	}
}

func (s *alertPointService) List(ctx context.Context) ([]entity.AlertPoint, error) {
	points, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list alert points")
	}

	return points, nil
}

func (s *alertPointService) Clear(ctx context.Context) error {
	return errors.Wrap(s.repo.Clear(ctx), "clear alert points")
}
