// Package lifecycle holds the time-driven jobs: the status sweep and the
// outbox relay.
package lifecycle

import (
	"context"
	"log/slog"

	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/usecase/shared"
)

type Sweeper struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweeper(uow shared.UnitOfWork, clock clock.Clock) *Sweeper {
	return &Sweeper{uow: uow, clock: clock}
}

// Sweep moves RESERVED to IN_USE once started and IN_USE to COMPLETED once
// ended. CANCELED is never touched and a repeat at the same instant is a no-op.
func (s *Sweeper) Sweep(ctx context.Context) (shared.AdvanceResult, error) {
	now := s.clock.Now()

	var res shared.AdvanceResult
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().AdvanceStatuses(ctx, now)
		return err
	})
	if err != nil {
		slog.Error("lifecycle sweep failed",
			"started", res.Started,
			"completed", res.Completed,
			"error", err.Error())
		return res, err
	}

	if res.Started > 0 || res.Completed > 0 {
		slog.Info("lifecycle sweep", "started", res.Started, "completed", res.Completed)
	} else {
		slog.Debug("lifecycle sweep", "started", 0, "completed", 0)
	}
	return res, nil
}
