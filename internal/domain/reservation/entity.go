package reservation

import (
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"
)

type Reservation struct {
	id           int64
	owner        user.StudentID
	facility     facility.Ref
	window       timeslot.Window
	status       Status
	participants []user.StudentID
	createdAt    time.Time
}

// NewReservation builds an unsaved RESERVED reservation. Participants are only
// meaningful for meeting rooms.
func NewReservation(
	owner user.StudentID,
	ref facility.Ref,
	window timeslot.Window,
	participants []user.StudentID,
	now time.Time,
) (*Reservation, error) {
	if _, err := facility.NewRef(ref.Class, ref.ID); err != nil {
		return nil, errs.Validation("invalid facility: %v", err)
	}
	if !window.Start.Before(window.End) {
		return nil, errs.Validation("reservation start must be before end")
	}
	if ref.Class == facility.ClassSeat && len(participants) > 0 {
		return nil, errs.Validation("seat reservations cannot have participants")
	}

	return &Reservation{
		owner:        owner,
		facility:     ref,
		window:       window,
		status:       StatusReserved,
		participants: append([]user.StudentID(nil), participants...),
		createdAt:    now,
	}, nil
}

func ReconstructReservation(
	id int64,
	owner user.StudentID,
	ref facility.Ref,
	window timeslot.Window,
	status Status,
	participants []user.StudentID,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		owner:        owner,
		facility:     ref,
		window:       window,
		status:       status,
		participants: participants,
		createdAt:    createdAt,
	}
}

// Cancel applies the cancellation guard for requester.
func (r *Reservation) Cancel(requester user.StudentID) error {
	if r.owner != requester {
		return errs.Forbidden("only the owner can cancel reservation %d", r.id)
	}
	next, err := r.status.Transition(EventCancel)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// BoundRequesters returns the owner followed by the participants.
func (r *Reservation) BoundRequesters() []user.StudentID {
	out := make([]user.StudentID, 0, 1+len(r.participants))
	out = append(out, r.owner)
	return append(out, r.participants...)
}

func (r *Reservation) Involves(id user.StudentID) bool {
	for _, p := range r.BoundRequesters() {
		if p == id {
			return true
		}
	}
	return false
}

func (r *Reservation) AssignID(id int64) { r.id = id }

func (r *Reservation) ID() int64                      { return r.id }
func (r *Reservation) Owner() user.StudentID          { return r.owner }
func (r *Reservation) Facility() facility.Ref         { return r.facility }
func (r *Reservation) Window() timeslot.Window        { return r.window }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) Participants() []user.StudentID { return r.participants }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
