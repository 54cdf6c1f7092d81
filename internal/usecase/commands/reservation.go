package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/availability"
	"campus-reservation/internal/usecase/queries"
	"campus-reservation/internal/usecase/quota"
	"campus-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateSeatReservationInput is a validated seat request. A nil SeatID asks
// for random assignment.
type CreateSeatReservationInput struct {
	Requester user.StudentID
	SeatID    *int32
	Date      timeslot.Date
	Start     timeslot.TimeOfDay
	End       timeslot.TimeOfDay
}

type CreateRoomReservationInput struct {
	Requester    user.StudentID
	RoomID       int32
	Date         timeslot.Date
	Start        timeslot.TimeOfDay
	End          timeslot.TimeOfDay
	Participants []user.StudentID
}

type ReservationCommands interface {
	CreateSeatReservation(ctx context.Context, in CreateSeatReservationInput) (*queries.ReservationView, error)
	CreateRoomReservation(ctx context.Context, in CreateRoomReservationInput) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id int64, requester user.StudentID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	checker   *availability.Checker
	quota     *quota.Accountant
	policy    reservation.Policy
	blocklist user.Blocklist
	cache     shared.OccupancyCache
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	checker *availability.Checker,
	accountant *quota.Accountant,
	policy reservation.Policy,
	blocklist user.Blocklist,
	cache shared.OccupancyCache,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		checker:   checker,
		quota:     accountant,
		policy:    policy,
		blocklist: blocklist,
		cache:     cache,
		clock:     clock,
	}
}

// allocation is the class-independent form of a create request.
type allocation struct {
	owner        user.StudentID
	class        facility.Class
	facilityID   *int32
	date         timeslot.Date
	start        timeslot.TimeOfDay
	end          timeslot.TimeOfDay
	participants []user.StudentID
}

func (r *reservationCommandsImpl) CreateSeatReservation(ctx context.Context, in CreateSeatReservationInput) (*queries.ReservationView, error) {
	return r.allocate(ctx, allocation{
		owner:      in.Requester,
		class:      facility.ClassSeat,
		facilityID: in.SeatID,
		date:       in.Date,
		start:      in.Start,
		end:        in.End,
	})
}

func (r *reservationCommandsImpl) CreateRoomReservation(ctx context.Context, in CreateRoomReservationInput) (*queries.ReservationView, error) {
	roomID := in.RoomID
	return r.allocate(ctx, allocation{
		owner:        in.Requester,
		class:        facility.ClassMeetingRoom,
		facilityID:   &roomID,
		date:         in.Date,
		start:        in.Start,
		end:          in.End,
		participants: in.Participants,
	})
}

func (r *reservationCommandsImpl) allocate(ctx context.Context, req allocation) (*queries.ReservationView, error) {
	if r.blocklist.Contains(req.owner) {
		return nil, errs.Validation("invalid student id")
	}

	var created *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		target, window, err := r.acquire(ctx, tx, req, now)
		if err != nil {
			return err
		}

		res, err := r.validate(ctx, tx, req, target, window, now)
		if err != nil {
			return err
		}

		for _, id := range res.BoundRequesters() {
			if _, err := tx.Users().Upsert(ctx, id, now); err != nil {
				return err
			}
		}

		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Conflict("%s could not be reserved", target.Ref)
			}
			return err
		}
		res.AssignID(id)

		if err := appendEvent(ctx, tx, shared.EventReservationCreated, res, now); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(ctx, req.class, req.date)
	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"facility", created.Facility().String(),
		"owner", created.Owner().String())

	return queries.NewReservationView(created), nil
}

// acquire takes the facility hold. Random seat mode needs the window first,
// so the window is validated here for that path only.
func (r *reservationCommandsImpl) acquire(ctx context.Context, tx shared.Tx, req allocation, now time.Time) (facility.Facility, timeslot.Window, error) {
	if req.facilityID == nil {
		window, err := r.policy.BuildWindow(req.class, req.date, req.start, req.end, now)
		if err != nil {
			return facility.Facility{}, timeslot.Window{}, err
		}
		if ok, err := r.checker.HasUserOverlap(ctx, tx, req.owner, window, facility.ClassSeat, facility.ClassMeetingRoom); err != nil {
			return facility.Facility{}, timeslot.Window{}, err
		} else if ok {
			return facility.Facility{}, timeslot.Window{}, errs.Conflict("%s already has a reservation overlapping this time", req.owner)
		}
		f, err := r.checker.PickRandomSeat(ctx, tx, window)
		if err != nil {
			return facility.Facility{}, timeslot.Window{}, err
		}
		return f, window, nil
	}

	ref, err := facility.NewRef(req.class, *req.facilityID)
	if err != nil {
		return facility.Facility{}, timeslot.Window{}, errs.Validation("invalid %s id %d", req.class, *req.facilityID)
	}
	f, err := tx.Facilities().LockFacility(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return facility.Facility{}, timeslot.Window{}, errs.NotFound("%s does not exist", ref)
		}
		return facility.Facility{}, timeslot.Window{}, err
	}
	if !f.Available {
		return facility.Facility{}, timeslot.Window{}, errs.Conflict("%s is not available for reservations", ref)
	}

	window, err := r.policy.BuildWindow(req.class, req.date, req.start, req.end, now)
	if err != nil {
		return facility.Facility{}, timeslot.Window{}, err
	}
	return f, window, nil
}

func (r *reservationCommandsImpl) validate(
	ctx context.Context,
	tx shared.Tx,
	req allocation,
	target facility.Facility,
	window timeslot.Window,
	now time.Time,
) (*reservation.Reservation, error) {
	if req.class == facility.ClassMeetingRoom {
		if err := r.policy.ValidateParticipants(req.owner, req.participants); err != nil {
			return nil, err
		}
		for _, p := range req.participants {
			if r.blocklist.Contains(p) {
				return nil, errs.Validation("invalid student id %s", p)
			}
		}
		if !target.Admits(1 + len(req.participants)) {
			return nil, errs.Validation("%s admits at most %d people", target.Ref, *target.MaxCapacity)
		}
	}

	res, err := reservation.NewReservation(req.owner, target.Ref, window, req.participants, now)
	if err != nil {
		return nil, err
	}
	bound := reservation.SortedRequesters(res.BoundRequesters())

	// sorted order keeps concurrent bookings sharing people from deadlocking
	for _, id := range bound {
		if err := tx.Facilities().LockRequester(ctx, id); err != nil {
			return nil, err
		}
	}

	conflict, err := r.checker.HasResourceConflict(ctx, tx.Reservations(), target.Ref, window)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errs.Conflict("%s is already reserved for an overlapping time", target.Ref)
	}

	for _, id := range bound {
		busy, err := r.checker.HasUserOverlap(ctx, tx, id, window, facility.ClassSeat, facility.ClassMeetingRoom)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, errs.Conflict("%s already has a reservation overlapping this time", id)
		}
	}

	charged := []user.StudentID{req.owner}
	if req.class == facility.ClassMeetingRoom {
		charged = bound
	}
	if err := r.quota.CheckHeadroom(ctx, tx.Reservations(), charged, req.class, window); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, id int64, requester user.StudentID) (*queries.ReservationView, error) {
	var canceled *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound("reservation %d does not exist", id)
			}
			return err
		}

		if err := res.Cancel(requester); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return err
		}

		canceled = res
		return appendEvent(ctx, tx, shared.EventReservationCanceled, res, r.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(ctx, canceled.Facility().Class, r.policy.Zone.DateOf(canceled.Window().Start))
	slog.Info("reservation canceled", "reservation_id", id, "requester", requester.String())

	return queries.NewReservationView(canceled), nil
}

func appendEvent(ctx context.Context, tx shared.Tx, kind string, res *reservation.Reservation, now time.Time) error {
	payload, err := json.Marshal(queries.NewReservationView(res))
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Events().Append(ctx, shared.Event{
		ID:            uuid.New(),
		Kind:          kind,
		ReservationID: res.ID(),
		Payload:       payload,
		CreatedAt:     now,
	})
}
