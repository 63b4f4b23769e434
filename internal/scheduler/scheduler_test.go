package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subfeed/internal/domain"
)

type fakeSyncer struct {
	calls    atomic.Int32
	running  atomic.Int32
	overlaps atomic.Int32
	result   *domain.SyncResult
	err      error

	mu        sync.Mutex
	deadlines []bool
}

func (f *fakeSyncer) Sync(ctx context.Context) (*domain.SyncResult, error) {
	if f.running.Add(1) > 1 {
		f.overlaps.Add(1)
	}
	defer f.running.Add(-1)

	f.calls.Add(1)
	_, hasDeadline := ctx.Deadline()
	f.mu.Lock()
	f.deadlines = append(f.deadlines, hasDeadline)
	f.mu.Unlock()

	time.Sleep(2 * time.Millisecond)
	return f.result, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce_ReturnsResult(t *testing.T) {
	syncer := &fakeSyncer{result: &domain.SyncResult{ID: "batch", NewItemCount: 3, Changed: true, FailedChannels: 1}}
	s := NewScheduler(syncer, time.Hour, time.Minute, testLogger())

	result := s.RunOnce(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, 3, result.NewItemCount)
	assert.Equal(t, []bool{true}, syncer.deadlines)
}

func TestRunOnce_Error(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("db down")}
	s := NewScheduler(syncer, time.Hour, 0, testLogger())

	assert.Nil(t, s.RunOnce(context.Background()))
	assert.Equal(t, []bool{false}, syncer.deadlines)
}

func TestStart_RunsImmediatelyAndOnTicks(t *testing.T) {
	syncer := &fakeSyncer{result: &domain.SyncResult{}}
	s := NewScheduler(syncer, 5*time.Millisecond, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Zero(t, syncer.overlaps.Load())
}
