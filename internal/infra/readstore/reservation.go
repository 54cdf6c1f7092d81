package readstore

import (
	"context"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/infra/repository/converter"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
	"campus-reservation/internal/usecase/queries"
	"campus-reservation/internal/usecase/shared"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservation, error)
	ListParticipants(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]int64, error)
	ListReservationsByStudent(ctx context.Context, db sqlc.DBTX, studentID int64) ([]sqlc.ListReservationsByStudentRow, error)
	ListOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupancyParams) ([]sqlc.ListOccupancyRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	participants, err := r.queries.ListParticipants(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants", err)
	}

	return toReservationView(row, participants)
}

// FindByStudent lists reservations the student owns or takes part in, newest
// start first.
func (r *ReservationReadStore) FindByStudent(ctx context.Context, studentID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByStudent(ctx, r.db, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by student", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := toReservationView(sqlc.Reservation{
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
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

// FindOccupancy lists the active reservations of class overlapping w.
func (r *ReservationReadStore) FindOccupancy(ctx context.Context, class facility.Class, w timeslot.Window) ([]shared.Occupancy, error) {
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

	result := make([]shared.Occupancy, 0, len(rows))
	for _, row := range rows {
		ref, err := converter.FacilityFromColumns(row.SeatID, row.MeetingRoomID)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		result = append(result, shared.Occupancy{
			Facility: ref,
			Window: timeslot.Window{
				Start: pgconv.TimeFromPgtype(row.StartTime),
				End:   pgconv.TimeFromPgtype(row.EndTime),
			},
		})
	}
	return result, nil
}

func toReservationView(row sqlc.Reservation, participants []int64) (*queries.ReservationView, error) {
	ref, err := converter.FacilityFromColumns(row.SeatID, row.MeetingRoomID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	if participants == nil {
		participants = []int64{}
	}
	return &queries.ReservationView{
		ID:           row.ReservationID,
		Class:        ref.Class,
		FacilityID:   ref.ID,
		OwnerID:      row.StudentID,
		Participants: participants,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
