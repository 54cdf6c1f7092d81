// Package availability answers "is this facility free" and "is this requester
// busy" for both facility classes through one code path.
package availability

import (
	"context"
	"slices"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/shared"
)

// ConflictSource is anything that can tell whether a facility has a
// reservation in one of statuses overlapping w: the store inside a
// transaction, or an in-memory Snapshot.
type ConflictSource interface {
	HasFacilityConflict(ctx context.Context, ref facility.Ref, w timeslot.Window, statuses []reservation.Status) (bool, error)
}

// maxPickAttempts bounds the random seat retry loop when a picked seat was
// taken between the pick and its row hold.
const maxPickAttempts = 8

type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

// HasResourceConflict reports an active reservation on ref overlapping w.
func (c *Checker) HasResourceConflict(ctx context.Context, src ConflictSource, ref facility.Ref, w timeslot.Window) (bool, error) {
	return src.HasFacilityConflict(ctx, ref, w, reservation.ActiveStatuses)
}

// HasUserOverlap reports an active reservation bound to id, as owner or
// participant, overlapping w in the selected classes.
func (c *Checker) HasUserOverlap(ctx context.Context, tx shared.Tx, id user.StudentID, w timeslot.Window, classes ...facility.Class) (bool, error) {
	scope := shared.OverlapScope{Statuses: reservation.ActiveStatuses}
	for _, cl := range classes {
		switch cl {
		case facility.ClassSeat:
			scope.Seats = true
		case facility.ClassMeetingRoom:
			scope.Rooms = true
		}
	}
	if !scope.Seats && !scope.Rooms {
		return false, nil
	}
	return tx.Reservations().HasUserOverlap(ctx, id, w, scope)
}

// PickRandomSeat takes the seat pool hold, then picks a free seat and holds
// its row. The caller's transaction keeps both holds until commit.
func (c *Checker) PickRandomSeat(ctx context.Context, tx shared.Tx, w timeslot.Window) (facility.Facility, error) {
	if err := tx.Facilities().LockSeatPool(ctx); err != nil {
		return facility.Facility{}, err
	}

	var tried []int32
	for range maxPickAttempts {
		id, ok, err := tx.Facilities().FindFreeSeat(ctx, w, tried)
		if err != nil {
			return facility.Facility{}, err
		}
		if !ok {
			break
		}

		f, err := tx.Facilities().LockFacility(ctx, facility.SeatRef(id))
		if err != nil {
			return facility.Facility{}, err
		}
		// a specific-seat booking may have committed between the pick and the hold
		conflict, err := c.HasResourceConflict(ctx, tx.Reservations(), f.Ref, w)
		if err != nil {
			return facility.Facility{}, err
		}
		if f.Available && !conflict {
			return f, nil
		}
		tried = append(tried, id)
	}

	return facility.Facility{}, errs.NoCandidate("no seat is free for the requested time")
}

// Snapshot is an in-memory ConflictSource over a list of active reservations.
type Snapshot struct {
	occupancy []shared.Occupancy
}

func NewSnapshot(occ []shared.Occupancy) *Snapshot {
	return &Snapshot{occupancy: slices.Clone(occ)}
}

// HasFacilityConflict treats every entry of the snapshot as active; statuses
// is accepted for interface parity.
func (s *Snapshot) HasFacilityConflict(_ context.Context, ref facility.Ref, w timeslot.Window, _ []reservation.Status) (bool, error) {
	for _, o := range s.occupancy {
		if o.Facility == ref && o.Window.Overlaps(w) {
			return true, nil
		}
	}
	return false, nil
}
