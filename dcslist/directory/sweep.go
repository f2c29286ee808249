package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

const sweepRunTimeout = 30 * time.Second

// Sweeper periodically clears expired bumps. The ranking path derives
// effective bump status on its own, so the sweep is a storage hygiene
// optimization, not a correctness requirement.
type Sweeper struct {
	ledger   Ledger
	interval time.Duration
	ticker   *time.Ticker
	shutdown chan struct{}
	now      func() time.Time
}

func NewSweeper(ledger Ledger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Sweeper{
		ledger:   ledger,
		interval: interval,
		shutdown: make(chan struct{}),
		now:      time.Now,
	}
}

// Start begins the periodic sweep loop.
func (s *Sweeper) Start() {
	s.ticker = time.NewTicker(s.interval)
	go func() {
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), sweepRunTimeout)
				if _, err := s.Run(ctx); err != nil {
					slog.Error("Bump expiry sweep failed",
						slog.String("type", "sweep"),
						slog.Any("error", err))
				}
				cancel()
			case <-s.shutdown:
				return
			}
		}
	}()

	slog.Info("Bump expiry sweeper started",
		slog.String("type", "sweep"),
		slog.Duration("interval", s.interval))
}

// Stop terminates the sweep loop.
func (s *Sweeper) Stop() {
	close(s.shutdown)
}

// Run performs one sweep and reports what was expired. Idempotent and safe
// to invoke concurrently with purchases; a purchase that re-bumps a server
// after the sweep's read simply sets the flags forward again.
func (s *Sweeper) Run(ctx context.Context) (*models.SweepReport, error) {
	now := s.now()

	expired, err := s.ledger.ExpireBumps(ctx, now)
	if err != nil {
		return nil, err
	}

	report := &models.SweepReport{
		Success:        true,
		ExpiredCount:   len(expired),
		ExpiredServers: expired,
		CheckedAt:      now,
	}

	if len(expired) > 0 {
		names := make([]string, 0, len(expired))
		for _, e := range expired {
			names = append(names, e.Name)
		}
		slog.Info("Expired bumps cleared",
			slog.String("type", "sweep"),
			slog.Int("count", len(expired)),
			slog.Any("servers", names))
	}

	return report, nil
}
