package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"zonewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSink records deliveries and dismissals. Delivery can be forced to fail
// globally or for selected alert points.
type fakeSink struct {
	mu              sync.Mutex
	nextHandle      int
	deliverAttempts int
	delivered       []string // alert point IDs, in delivery order
	dismissed       []string // handles, in dismissal order
	failDeliver     bool
	failFor         map[string]bool // per alert point ID
}

func (s *fakeSink) Deliver(_ context.Context, _, _ string, data map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deliverAttempts++

	alertPointID := data["alert_point_id"]
	if s.failDeliver || s.failFor[alertPointID] {
		return "", errors.New("push gateway unreachable")
	}

	s.nextHandle++
	handle := "handle-" + alertPointID
	s.delivered = append(s.delivered, alertPointID)

	return handle, nil
}

func (s *fakeSink) Dismiss(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dismissed = append(s.dismissed, handle)

	return nil
}

func (s *fakeSink) deliveredIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.delivered...)
}

func (s *fakeSink) dismissedHandles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.dismissed...)
}

func (s *fakeSink) attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deliverAttempts
}

// brokenMembershipRepo fails every read so services exercise their degraded
// paths.
type brokenMembershipRepo struct{}

func (brokenMembershipRepo) Contains(context.Context, string) (bool, error) {
	return false, errors.New("storage corrupted")
}

func (brokenMembershipRepo) Add(context.Context, string) error    { return nil }
func (brokenMembershipRepo) Remove(context.Context, string) error { return nil }

func (brokenMembershipRepo) List(context.Context) ([]string, error) {
	return nil, errors.New("storage corrupted")
}

func (brokenMembershipRepo) Clear(context.Context) error { return nil }

// brokenMuteRepo fails every load.
type brokenMuteRepo struct{}

func (brokenMuteRepo) Load(context.Context) (*entity.MuteSettings, error) {
	return nil, errors.New("storage corrupted")
}

func (brokenMuteRepo) Save(context.Context, *entity.MuteSettings) error { return nil }
