package readstore

import (
	"context"

	"campus-reservation/internal/infra"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
	"campus-reservation/internal/usecase/queries"
)

type FacilityReadQueries interface {
	ListSeats(ctx context.Context, db sqlc.DBTX) ([]sqlc.Seat, error)
	ListMeetingRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.MeetingRoom, error)
}

type FacilityReadStore struct {
	queries FacilityReadQueries
	db      sqlc.DBTX
}

func NewFacilityReadStore(queries FacilityReadQueries, db sqlc.DBTX) *FacilityReadStore {
	return &FacilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FacilityReadStore) FindSeats(ctx context.Context) ([]*queries.SeatView, error) {
	rows, err := r.queries.ListSeats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find seats", err)
	}

	result := make([]*queries.SeatView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SeatView{ID: row.SeatID, Available: row.IsAvailable}
	}
	return result, nil
}

func (r *FacilityReadStore) FindMeetingRooms(ctx context.Context) ([]*queries.MeetingRoomView, error) {
	rows, err := r.queries.ListMeetingRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find meeting rooms", err)
	}

	result := make([]*queries.MeetingRoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MeetingRoomView{
			ID:          row.RoomID,
			MinCapacity: row.MinCapacity,
			MaxCapacity: pgconv.Int32PtrFromPgtype(row.MaxCapacity),
			Available:   row.IsAvailable,
		}
	}
	return result, nil
}
