package worker

import (
	"context"
	"log/slog"
	"time"
)

// expirer is the slice of the expire use case the sweeper needs.
type expirer interface {
	Execute(ctx context.Context, idleAfter time.Duration) ([]string, error)
}

// PresenceSweeper periodically evicts idle participants. It runs for the
// lifetime of the process, independently of request handling; a failed pass is
// logged and the next one runs as scheduled.
type PresenceSweeper struct {
	expire    expirer
	interval  time.Duration
	idleAfter time.Duration
	log       *slog.Logger
}

func NewPresenceSweeper(expire expirer, interval, idleAfter time.Duration, log *slog.Logger) *PresenceSweeper {
	return &PresenceSweeper{
		expire:    expire,
		interval:  interval,
		idleAfter: idleAfter,
		log:       log,
	}
}

// Run blocks, sweeping once per interval, until the context is canceled.
func (s *PresenceSweeper) Run(ctx context.Context) error {
	s.log.Info("starting presence sweeper",
		"interval", s.interval.String(),
		"idle_after", s.idleAfter.String(),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("presence sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PresenceSweeper) sweep(ctx context.Context) {
	// Each pass gets its own deadline so a slow store cannot stall the loop.
	cctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	evicted, err := s.expire.Execute(cctx, s.idleAfter)
	if err != nil {
		s.log.Error("presence sweep failed", "err", err)
	}
	if len(evicted) > 0 {
		s.log.Info("evicted idle participants", "names", evicted)
	}
}
