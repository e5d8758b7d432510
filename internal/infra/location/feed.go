// Package location bridges the platform location adapter to the tracker.
package location

import (
	"context"
	"sync"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrFeedClosed is returned when publishing to a closed feed.
var ErrFeedClosed = errors.New("location feed closed")

// Feed is a buffered, order-preserving location sample stream with a single
// consumer. The delivery layer publishes into it; the tracker drains it.
type Feed struct {
	samples   chan entity.Sample
	done      chan struct{}
	closeOnce sync.Once
}

var _ service.LocationSource = (*Feed)(nil)

// NewFeed creates a feed with the given buffer capacity.
func NewFeed(buffer int) *Feed {
	if buffer <= 0 {
		buffer = 1
	}

	return &Feed{
		samples: make(chan entity.Sample, buffer),
		done:    make(chan struct{}),
	}
}

// Samples returns the consuming side of the feed.
func (f *Feed) Samples() <-chan entity.Sample {
	return f.samples
}

// Publish enqueues a sample, blocking while the buffer is full so arrival
// order is never reshuffled by drops.
func (f *Feed) Publish(ctx context.Context, sample entity.Sample) error {
	select {
	case f.samples <- sample:
		return nil
	case <-f.done:
		return ErrFeedClosed
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "publish location sample")
	}
}

// Close rejects further publishes. The consumer stops through its own
// context, draining nothing further.
func (f *Feed) Close() {
	f.closeOnce.Do(func() { close(f.done) })
}
