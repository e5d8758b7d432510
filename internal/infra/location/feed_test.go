package location

import (
	"context"
	"testing"
	"time"

	"zonewatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PreservesArrivalOrder(t *testing.T) {
	ctx := context.Background()
	feed := NewFeed(4)

	for i := 1; i <= 3; i++ {
		require.NoError(t, feed.Publish(ctx, entity.Sample{Latitude: float64(i)}))
	}

	for i := 1; i <= 3; i++ {
		sample := <-feed.Samples()
		assert.Equal(t, float64(i), sample.Latitude)
	}
}

func TestFeed_PublishAfterClose(t *testing.T) {
	feed := NewFeed(4)
	feed.Close()

	err := feed.Publish(context.Background(), entity.Sample{})
	assert.ErrorIs(t, err, ErrFeedClosed)
}

func TestFeed_CloseIsIdempotent(t *testing.T) {
	feed := NewFeed(1)
	feed.Close()
	feed.Close()
}

func TestFeed_PublishHonorsContextWhenFull(t *testing.T) {
	feed := NewFeed(1)
	require.NoError(t, feed.Publish(context.Background(), entity.Sample{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := feed.Publish(ctx, entity.Sample{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFeed_CloseUnblocksPendingPublish(t *testing.T) {
	feed := NewFeed(1)
	require.NoError(t, feed.Publish(context.Background(), entity.Sample{}))

	errs := make(chan error, 1)
	go func() {
		errs <- feed.Publish(context.Background(), entity.Sample{})
	}()

	feed.Close()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrFeedClosed)
	case <-time.After(time.Second):
		t.Fatal("publish did not unblock on close")
	}
}
