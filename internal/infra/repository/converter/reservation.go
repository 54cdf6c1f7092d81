package converter

import (
	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	seatID, roomID := FacilityColumns(res.Facility())
	w := res.Window()

	return sqlc.CreateReservationParams{
		StudentID:     res.Owner().Int64(),
		SeatID:        seatID,
		MeetingRoomID: roomID,
		StartTime:     pgconv.TimeToPgtype(w.Start),
		EndTime:       pgconv.TimeToPgtype(w.End),
		Status:        res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

// FacilityColumns spreads a facility reference over the two nullable
// reservation columns.
func FacilityColumns(ref facility.Ref) (seatID, roomID pgtype.Int4) {
	if ref.Class == facility.ClassSeat {
		return pgconv.Int32ToPgtype(ref.ID), pgtype.Int4{}
	}
	return pgtype.Int4{}, pgconv.Int32ToPgtype(ref.ID)
}

func FacilityFromColumns(seatID, roomID pgtype.Int4) (facility.Ref, error) {
	switch {
	case seatID.Valid && !roomID.Valid:
		return facility.SeatRef(seatID.Int32), nil
	case roomID.Valid && !seatID.Valid:
		return facility.MeetingRoomRef(roomID.Int32), nil
	default:
		return facility.Ref{}, errs.New("reservation row must reference exactly one facility")
	}
}

func ReservationFromInfra(row sqlc.Reservation, participantIDs []int64) (*reservation.Reservation, error) {
	ref, err := FacilityFromColumns(row.SeatID, row.MeetingRoomID)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ReservationID,
		user.StudentID(row.StudentID),
		ref,
		timeslot.Window{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		},
		status,
		StudentIDs(participantIDs),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func StudentIDs(ids []int64) []user.StudentID {
	out := make([]user.StudentID, len(ids))
	for i, id := range ids {
		out[i] = user.StudentID(id)
	}
	return out
}

func SeatFromInfra(row sqlc.Seat) facility.Seat {
	return facility.Seat{ID: row.SeatID, Available: row.IsAvailable}
}

func MeetingRoomFromInfra(row sqlc.MeetingRoom) facility.MeetingRoom {
	return facility.MeetingRoom{
		ID:          row.RoomID,
		MinCapacity: row.MinCapacity,
		MaxCapacity: pgconv.Int32PtrFromPgtype(row.MaxCapacity),
		Available:   row.IsAvailable,
	}
}
