package shared

import (
	"context"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
)

type UnitOfWork interface {
	// Within: exclusive write transaction. Row and advisory holds taken inside
	// fn last until commit or rollback.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: every statement commits on its own
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Facilities() FacilityRepository
	Reservations() ReservationRepository
	Events() EventRepository
}

type UserRepository interface {
	Upsert(ctx context.Context, id user.StudentID, now time.Time) (*user.Student, error)
	FindByID(ctx context.Context, id user.StudentID) (*user.Student, error)
}

type FacilityRepository interface {
	// LockFacility reads the facility row under an exclusive row hold.
	LockFacility(ctx context.Context, ref facility.Ref) (facility.Facility, error)
	// LockSeatPool serialises random seat assignment for the rest of the transaction.
	LockSeatPool(ctx context.Context) error
	// LockRequester serialises bookings that bind the same requester.
	LockRequester(ctx context.Context, id user.StudentID) error
	// FindFreeSeat picks a uniformly random available seat with no active
	// reservation overlapping w. ok is false when none is left.
	FindFreeSeat(ctx context.Context, w timeslot.Window, exclude []int32) (id int32, ok bool, err error)
	ListSeats(ctx context.Context) ([]facility.Seat, error)
	ListMeetingRooms(ctx context.Context) ([]facility.MeetingRoom, error)
	UpsertSeat(ctx context.Context, s facility.Seat) error
	UpsertMeetingRoom(ctx context.Context, r facility.MeetingRoom) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status) error
	ListByStudent(ctx context.Context, id user.StudentID) ([]*reservation.Reservation, error)

	HasFacilityConflict(ctx context.Context, ref facility.Ref, w timeslot.Window, statuses []reservation.Status) (bool, error)
	HasUserOverlap(ctx context.Context, id user.StudentID, w timeslot.Window, scope OverlapScope) (bool, error)
	SumUsageMinutes(ctx context.Context, f UsageFilter) (int, error)
	ListOccupancy(ctx context.Context, class facility.Class, w timeslot.Window) ([]Occupancy, error)

	// AdvanceStatuses runs the two bulk lifecycle updates as separate statements.
	AdvanceStatuses(ctx context.Context, now time.Time) (AdvanceResult, error)
}

type EventRepository interface {
	Append(ctx context.Context, ev Event) error
	ListUnpublished(ctx context.Context, limit int32) ([]Event, error)
	MarkPublished(ctx context.Context, id EventID, at time.Time) error
}
