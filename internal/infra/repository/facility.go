package repository

import (
	"context"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/infra/repository/converter"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
)

// Advisory lock keys below the student id range, so they never collide with
// per-requester locks.
const seatPoolLockKey int64 = 1

type FacilityQueries interface {
	GetSeatForUpdate(ctx context.Context, db sqlc.DBTX, seatID int32) (sqlc.Seat, error)
	GetMeetingRoomForUpdate(ctx context.Context, db sqlc.DBTX, roomID int32) (sqlc.MeetingRoom, error)
	AcquireXactLock(ctx context.Context, db sqlc.DBTX, lockKey int64) error
	PickRandomFreeSeat(ctx context.Context, db sqlc.DBTX, arg sqlc.PickRandomFreeSeatParams) (int32, error)
	ListSeats(ctx context.Context, db sqlc.DBTX) ([]sqlc.Seat, error)
	ListMeetingRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.MeetingRoom, error)
	UpsertSeat(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSeatParams) error
	UpsertMeetingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertMeetingRoomParams) error
}

type FacilityRepository struct {
	queries FacilityQueries
	db      sqlc.DBTX
}

func NewFacilityRepository(queries FacilityQueries, db sqlc.DBTX) *FacilityRepository {
	return &FacilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FacilityRepository) LockFacility(ctx context.Context, ref facility.Ref) (facility.Facility, error) {
	switch ref.Class {
	case facility.ClassSeat:
		row, err := r.queries.GetSeatForUpdate(ctx, r.db, ref.ID)
		if err != nil {
			return facility.Facility{}, infra.WrapRepoErr("failed to lock seat", err)
		}
		return facility.FromSeat(converter.SeatFromInfra(row)), nil
	case facility.ClassMeetingRoom:
		row, err := r.queries.GetMeetingRoomForUpdate(ctx, r.db, ref.ID)
		if err != nil {
			return facility.Facility{}, infra.WrapRepoErr("failed to lock meeting room", err)
		}
		return facility.FromMeetingRoom(converter.MeetingRoomFromInfra(row)), nil
	default:
		return facility.Facility{}, infra.WrapRepoErr("unknown facility class", facility.ErrInvalidClass, infra.KindNotFound)
	}
}

func (r *FacilityRepository) LockSeatPool(ctx context.Context) error {
	if err := r.queries.AcquireXactLock(ctx, r.db, seatPoolLockKey); err != nil {
		return infra.WrapRepoErr("failed to lock seat pool", err)
	}
	return nil
}

func (r *FacilityRepository) LockRequester(ctx context.Context, id user.StudentID) error {
	if err := r.queries.AcquireXactLock(ctx, r.db, id.Int64()); err != nil {
		return infra.WrapRepoErr("failed to lock requester", err)
	}
	return nil
}

func (r *FacilityRepository) FindFreeSeat(ctx context.Context, w timeslot.Window, exclude []int32) (int32, bool, error) {
	if exclude == nil {
		exclude = []int32{}
	}
	id, err := r.queries.PickRandomFreeSeat(ctx, r.db, sqlc.PickRandomFreeSeatParams{
		ExcludedSeatIds: exclude,
		Statuses:        reservation.StatusStrings(reservation.ActiveStatuses),
		EndTime:         pgconv.TimeToPgtype(w.End),
		StartTime:       pgconv.TimeToPgtype(w.Start),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to pick a free seat", err)
	}
	return id, true, nil
}

func (r *FacilityRepository) ListSeats(ctx context.Context) ([]facility.Seat, error) {
	rows, err := r.queries.ListSeats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}
	out := make([]facility.Seat, len(rows))
	for i, row := range rows {
		out[i] = converter.SeatFromInfra(row)
	}
	return out, nil
}

func (r *FacilityRepository) ListMeetingRooms(ctx context.Context) ([]facility.MeetingRoom, error) {
	rows, err := r.queries.ListMeetingRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting rooms", err)
	}
	out := make([]facility.MeetingRoom, len(rows))
	for i, row := range rows {
		out[i] = converter.MeetingRoomFromInfra(row)
	}
	return out, nil
}

func (r *FacilityRepository) UpsertSeat(ctx context.Context, s facility.Seat) error {
	err := r.queries.UpsertSeat(ctx, r.db, sqlc.UpsertSeatParams{SeatID: s.ID, IsAvailable: s.Available})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert seat", err)
	}
	return nil
}

func (r *FacilityRepository) UpsertMeetingRoom(ctx context.Context, m facility.MeetingRoom) error {
	err := r.queries.UpsertMeetingRoom(ctx, r.db, sqlc.UpsertMeetingRoomParams{
		RoomID:      m.ID,
		MinCapacity: m.MinCapacity,
		MaxCapacity: pgconv.Int32PtrToPgtype(m.MaxCapacity),
		IsAvailable: m.Available,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert meeting room", err)
	}
	return nil
}
