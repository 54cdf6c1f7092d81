package repository

import (
	"context"
	"time"

	"campus-reservation/internal/infra"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
	"campus-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	InsertReservationEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertReservationEventParams) error
	ListUnpublishedEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListUnpublishedEventsRow, error)
	MarkEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventPublishedParams) error
}

// EventRepository is the reservation outbox.
type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, ev shared.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	err := r.queries.InsertReservationEvent(ctx, r.db, sqlc.InsertReservationEventParams{
		ID:            ev.ID,
		Kind:          ev.Kind,
		ReservationID: ev.ReservationID,
		Payload:       ev.Payload,
		CreatedAt:     pgconv.TimeToPgtype(ev.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append reservation event", err)
	}
	return nil
}

// ListUnpublished skips rows another relay already holds.
func (r *EventRepository) ListUnpublished(ctx context.Context, limit int32) ([]shared.Event, error) {
	rows, err := r.queries.ListUnpublishedEvents(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unpublished events", err)
	}
	out := make([]shared.Event, len(rows))
	for i, row := range rows {
		out[i] = shared.Event{
			ID:            row.ID,
			Kind:          row.Kind,
			ReservationID: row.ReservationID,
			Payload:       row.Payload,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, id shared.EventID, at time.Time) error {
	err := r.queries.MarkEventPublished(ctx, r.db, sqlc.MarkEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark event published", err)
	}
	return nil
}
