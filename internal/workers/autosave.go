package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/chest-tracker/internal/logger"
)

// WorkspaceSaver is the slice of the workspace service the autosave worker
// needs.
type WorkspaceSaver interface {
	SaveWorkspace(ctx context.Context) error
}

// AutosaveWorker periodically snapshots the in-memory collections into the
// workspace database. A zero interval disables the worker.
type AutosaveWorker struct {
	ctx      context.Context
	interval time.Duration
	saver    WorkspaceSaver
	logger   *logger.Logger
	stop     chan struct{}
}

func NewAutosaveWorker(ctx context.Context, interval time.Duration, saver WorkspaceSaver, logger *logger.Logger) *AutosaveWorker {
	return &AutosaveWorker{
		ctx:      ctx,
		interval: interval,
		saver:    saver,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run starts the autosave loop in a background goroutine and returns
// immediately.
func (w *AutosaveWorker) Run() {
	if w.interval <= 0 || w.saver == nil {
		w.logger.Info().Msg("workspace autosave disabled")
		return
	}

	go w.loop()
}

// Stop terminates the autosave loop. Safe to call when Run never started
// the loop.
func (w *AutosaveWorker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
}

func (w *AutosaveWorker) loop() {
	log := w.logger.With().Str("func", "AutosaveWorker.loop").Logger()
	log.Info().Dur("interval", w.interval).Msg("workspace autosave started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.saver.SaveWorkspace(w.ctx); err != nil {
				log.Err(err).Msg("workspace autosave failed")
				continue
			}
			log.Debug().Msg("workspace autosaved")
		case <-w.stop:
			log.Info().Msg("workspace autosave stopped")
			return
		case <-w.ctx.Done():
			return
		}
	}
}
