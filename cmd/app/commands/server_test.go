package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeServer blocks in Start until Shutdown is called, or fails immediately.
type fakeServer struct {
	startErr  error
	stopped   chan struct{}
	shutdowns atomic.Int32
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stopped)
	}
	return nil
}

func TestServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("StopsOnContextCancel", func(t *testing.T) {
		api := newFakeServer(nil)
		metrics := newFakeServer(nil)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, logger, time.Second, api, metrics)
		}()

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancellation")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("OneServerFails", func(t *testing.T) {
		startErr := errors.New("address already in use")
		api := newFakeServer(nil)
		broken := newFakeServer(startErr)

		err := serve(context.Background(), logger, time.Second, api, broken)

		assert.ErrorIs(t, err, startErr)
		assert.Equal(t, int32(1), api.shutdowns.Load())
	})
}
