package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/logger"
)

// countingSaver signals on the first save and counts the rest.
type countingSaver struct {
	calls atomic.Int64
	first chan struct{}
	once  atomic.Bool
}

func newCountingSaver() *countingSaver {
	return &countingSaver{first: make(chan struct{})}
}

func (s *countingSaver) SaveWorkspace(_ context.Context) error {
	s.calls.Add(1)
	if s.once.CompareAndSwap(false, true) {
		close(s.first)
	}
	return nil
}

func TestAutosaveWorker_SavesPeriodically(t *testing.T) {
	saver := newCountingSaver()
	w := NewAutosaveWorker(context.Background(), 5*time.Millisecond, saver, logger.Nop())

	w.Run()
	defer w.Stop()

	select {
	case <-saver.first:
	case <-time.After(2 * time.Second):
		t.Fatal("expected at least one autosave")
	}
}

func TestAutosaveWorker_ZeroIntervalDisables(t *testing.T) {
	saver := newCountingSaver()
	w := NewAutosaveWorker(context.Background(), 0, saver, logger.Nop())

	w.Run()
	time.Sleep(20 * time.Millisecond)

	if n := saver.calls.Load(); n != 0 {
		t.Errorf("expected no saves with zero interval, got %d", n)
	}
}

func TestAutosaveWorker_StopEndsLoop(t *testing.T) {
	saver := newCountingSaver()
	w := NewAutosaveWorker(context.Background(), 5*time.Millisecond, saver, logger.Nop())

	w.Run()

	select {
	case <-saver.first:
	case <-time.After(2 * time.Second):
		t.Fatal("expected at least one autosave before stop")
	}

	w.Stop()
	countAtStop := saver.calls.Load()
	time.Sleep(30 * time.Millisecond)

	// One tick may have been in flight when Stop landed.
	if n := saver.calls.Load(); n > countAtStop+1 {
		t.Errorf("expected saves to stop, got %d more after Stop", n-countAtStop)
	}
}

func TestAutosaveWorker_NilSaverDisables(t *testing.T) {
	w := NewAutosaveWorker(context.Background(), time.Millisecond, nil, logger.Nop())

	// Must not panic.
	w.Run()
	w.Stop()
}
