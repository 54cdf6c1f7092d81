package reservation

import (
	"campus-reservation/internal/pkg/errs"
)

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusInUse     Status = "IN_USE"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

// ActiveStatuses block a facility and a requester's time.
var ActiveStatuses = []Status{StatusReserved, StatusInUse}

// UsageStatuses count toward quota. CANCELED is excluded, COMPLETED is not.
var UsageStatuses = []Status{StatusReserved, StatusInUse, StatusCompleted}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Validation("unknown reservation status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusInUse, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func (s Status) IsActive() bool {
	return s == StatusReserved || s == StatusInUse
}

// Event drives a lifecycle transition.
type Event string

const (
	EventStart  Event = "start"
	EventFinish Event = "finish"
	EventCancel Event = "cancel"
)

// Transition is total over (Status, Event): every pair yields the next status
// or an error describing why the move is refused.
func (s Status) Transition(ev Event) (Status, error) {
	switch ev {
	case EventStart:
		if s == StatusReserved {
			return StatusInUse, nil
		}
	case EventFinish:
		if s == StatusInUse {
			return StatusCompleted, nil
		}
	case EventCancel:
		switch s {
		case StatusReserved:
			return StatusCanceled, nil
		case StatusCanceled:
			return s, errs.AlreadyCanceled("reservation is already canceled")
		case StatusInUse, StatusCompleted:
			return s, errs.Forbidden("only RESERVED reservations can be canceled (current: %s)", s)
		}
	default:
		return s, errs.Validation("unknown lifecycle event %q", ev)
	}
	return s, errs.Conflict("cannot %s a %s reservation", ev, s)
}

func StatusStrings(ss []Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
