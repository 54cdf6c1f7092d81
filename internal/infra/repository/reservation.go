package repository

import (
	"context"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/infra/repository/converter"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
	"campus-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	AddParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.AddParticipantParams) error
	GetReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservation, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservation, error)
	ListParticipants(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
	ListReservationsByStudent(ctx context.Context, db sqlc.DBTX, studentID int64) ([]sqlc.ListReservationsByStudentRow, error)
	HasFacilityConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.HasFacilityConflictParams) (bool, error)
	HasUserOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.HasUserOverlapParams) (bool, error)
	SumUsageMinutes(ctx context.Context, db sqlc.DBTX, arg sqlc.SumUsageMinutesParams) (int64, error)
	ListOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupancyParams) ([]sqlc.ListOccupancyRow, error)
	AdvanceReservedToInUse(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	AdvanceInUseToCompleted(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToInfra(res)

	id, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	for _, p := range res.Participants() {
		err := r.queries.AddParticipant(ctx, r.db, sqlc.AddParticipantParams{
			ReservationID:        id,
			ParticipantStudentID: p.Int64(),
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to add participant", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return r.withParticipants(ctx, row)
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return r.withParticipants(ctx, row)
}

func (r *ReservationRepository) withParticipants(ctx context.Context, row sqlc.Reservation) (*reservation.Reservation, error) {
	ids, err := r.queries.ListParticipants(ctx, r.db, row.ReservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants", err)
	}
	res, err := converter.ReservationFromInfra(row, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status) error {
	err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ReservationID: id,
		Status:        status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}

func (r *ReservationRepository) ListByStudent(ctx context.Context, id user.StudentID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByStudent(ctx, r.db, id.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by student", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromInfra(sqlc.Reservation{
			ReservationID: row.ReservationID,
			StudentID:     row.StudentID,
			SeatID:        row.SeatID,
			MeetingRoomID: row.MeetingRoomID,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
		}, row.ParticipantIds)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) HasFacilityConflict(ctx context.Context, ref facility.Ref, w timeslot.Window, statuses []reservation.Status) (bool, error) {
	seatID, roomID := converter.FacilityColumns(ref)
	conflict, err := r.queries.HasFacilityConflict(ctx, r.db, sqlc.HasFacilityConflictParams{
		SeatID:        seatID,
		MeetingRoomID: roomID,
		Statuses:      reservation.StatusStrings(statuses),
		EndTime:       pgconv.TimeToPgtype(w.End),
		StartTime:     pgconv.TimeToPgtype(w.Start),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check facility conflict", err)
	}
	return conflict, nil
}

func (r *ReservationRepository) HasUserOverlap(ctx context.Context, id user.StudentID, w timeslot.Window, scope shared.OverlapScope) (bool, error) {
	overlap, err := r.queries.HasUserOverlap(ctx, r.db, sqlc.HasUserOverlapParams{
		Statuses:     reservation.StatusStrings(scope.Statuses),
		EndTime:      pgconv.TimeToPgtype(w.End),
		StartTime:    pgconv.TimeToPgtype(w.Start),
		IncludeSeats: scope.Seats,
		IncludeRooms: scope.Rooms,
		StudentID:    id.Int64(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user overlap", err)
	}
	return overlap, nil
}

func (r *ReservationRepository) SumUsageMinutes(ctx context.Context, f shared.UsageFilter) (int, error) {
	minutes, err := r.queries.SumUsageMinutes(ctx, r.db, sqlc.SumUsageMinutesParams{
		Statuses:           reservation.StatusStrings(f.Statuses),
		RangeStart:         pgconv.TimeToPgtype(f.Range.Start),
		RangeEnd:           pgconv.TimeToPgtype(f.Range.End),
		Seats:              f.Class == facility.ClassSeat,
		Rooms:              f.Class == facility.ClassMeetingRoom,
		StudentID:          f.StudentID.Int64(),
		CountParticipation: f.CountParticipation,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum usage minutes", err)
	}
	return int(minutes), nil
}

func (r *ReservationRepository) ListOccupancy(ctx context.Context, class facility.Class, w timeslot.Window) ([]shared.Occupancy, error) {
	rows, err := r.queries.ListOccupancy(ctx, r.db, sqlc.ListOccupancyParams{
		Statuses:   reservation.StatusStrings(reservation.ActiveStatuses),
		RangeEnd:   pgconv.TimeToPgtype(w.End),
		RangeStart: pgconv.TimeToPgtype(w.Start),
		Seats:      class == facility.ClassSeat,
		Rooms:      class == facility.ClassMeetingRoom,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancy", err)
	}

	out := make([]shared.Occupancy, 0, len(rows))
	for _, row := range rows {
		ref, err := converter.FacilityFromColumns(row.SeatID, row.MeetingRoomID)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		out = append(out, shared.Occupancy{
			Facility: ref,
			Window: timeslot.Window{
				Start: pgconv.TimeFromPgtype(row.StartTime),
				End:   pgconv.TimeFromPgtype(row.EndTime),
			},
		})
	}
	return out, nil
}

// AdvanceStatuses starts due reservations before completing ended ones, so a
// reservation that is wholly past finishes in one sweep.
func (r *ReservationRepository) AdvanceStatuses(ctx context.Context, now time.Time) (shared.AdvanceResult, error) {
	var res shared.AdvanceResult
	ts := pgconv.TimeToPgtype(now)

	started, err := r.queries.AdvanceReservedToInUse(ctx, r.db, ts)
	if err != nil {
		return res, infra.WrapRepoErr("failed to start due reservations", err)
	}
	res.Started = started

	completed, err := r.queries.AdvanceInUseToCompleted(ctx, r.db, ts)
	if err != nil {
		return res, infra.WrapRepoErr("failed to complete ended reservations", err)
	}
	res.Completed = completed

	return res, nil
}
