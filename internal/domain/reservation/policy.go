package reservation

import (
	"slices"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"
)

// Limits bounds one facility class. Zero means unlimited.
type Limits struct {
	SlotMinutes        int
	DailyLimitMinutes  int
	WeeklyLimitMinutes int
}

// Policy is the booking rule set: zone, operating hours, slot sizes and quotas.
type Policy struct {
	Zone            timeslot.Zone
	Hours           timeslot.OperatingHours
	Seat            Limits
	MeetingRoom     Limits
	MinParticipants int
}

func (p Policy) Limits(class facility.Class) Limits {
	if class == facility.ClassMeetingRoom {
		return p.MeetingRoom
	}
	return p.Seat
}

// BuildWindow turns a local date and "HH:MM" bounds into a validated
// storage window for class. now guards against booking the past.
func (p Policy) BuildWindow(class facility.Class, date timeslot.Date, start, end timeslot.TimeOfDay, now time.Time) (timeslot.Window, error) {
	if start >= end {
		return timeslot.Window{}, errs.Validation("end time must be after start time")
	}
	if !p.Hours.Contains(start, end) {
		return timeslot.Window{}, errs.Validation("reservations are only possible between %s and %s", p.Hours.Open, p.Hours.Close)
	}
	slot := p.Limits(class).SlotMinutes
	if int(end-start) != slot {
		return timeslot.Window{}, errs.Validation("%s reservations must last exactly %d minutes", class, slot)
	}
	w := timeslot.Window{Start: p.Zone.ToStorageTime(date, start), End: p.Zone.ToStorageTime(date, end)}
	if !w.Start.After(now) {
		return timeslot.Window{}, errs.Validation("reservations must start in the future")
	}
	return w, nil
}

// ValidateParticipants checks the room participant list: distinct, excluding
// the owner, and at least MinParticipants long.
func (p Policy) ValidateParticipants(owner user.StudentID, participants []user.StudentID) error {
	if len(participants) < p.MinParticipants {
		return errs.Validation("meeting room reservations need at least %d participants", p.MinParticipants)
	}
	seen := make(map[user.StudentID]struct{}, len(participants))
	for _, id := range participants {
		if id == owner {
			return errs.Validation("the owner cannot also be listed as a participant")
		}
		if _, dup := seen[id]; dup {
			return errs.Validation("participant %s is listed more than once", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// SortedRequesters returns a sorted copy, the order in which per-requester
// holds are taken to avoid lock cycles.
func SortedRequesters(ids []user.StudentID) []user.StudentID {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
