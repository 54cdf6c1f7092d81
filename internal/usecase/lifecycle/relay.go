package lifecycle

import (
	"context"
	"log/slog"

	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/usecase/shared"
)

// Relay forwards outbox events to the publisher. An event is marked published
// in the same transaction that read it, so a failed publish leaves it queued.
type Relay struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	batchSize int32
}

func NewRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, clock clock.Clock, batchSize int32) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Relay{uow: uow, publisher: publisher, clock: clock, batchSize: batchSize}
}

// RelayOnce publishes up to one batch and returns how many were delivered.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		events, err := tx.Events().ListUnpublished(ctx, r.batchSize)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := r.publisher.Publish(ctx, ev); err != nil {
				// keep what went out; the rest waits for the next run
				slog.Warn("event publish failed",
					"event_id", ev.ID.String(),
					"kind", ev.Kind,
					"error", err.Error())
				return nil
			}
			if err := tx.Events().MarkPublished(ctx, ev.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		slog.Error("event relay failed", "error", err.Error())
		return 0, err
	}
	if published > 0 {
		slog.Debug("event relay", "published", published)
	}
	return published, nil
}
