package timeslot

import (
	"errors"
	"iter"
	"time"
)

var ErrEmptyWindow = errors.New("window start must be before end")

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrEmptyWindow
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

func (w Window) Minutes() int {
	return int(w.Duration() / time.Minute)
}

func (w Window) Overlaps(o Window) bool {
	return Overlaps(w.Start, w.End, o.Start, o.End)
}

// Ended reports whether the window's end is not after now.
func (w Window) Ended(now time.Time) bool {
	return !w.End.After(now)
}

// Overlaps is the half-open intersection test: touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OperatingHours bounds the bookable part of a local day.
type OperatingHours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func NewOperatingHours(open, close TimeOfDay) (OperatingHours, error) {
	if open >= close {
		return OperatingHours{}, errors.New("operating hours must open before they close")
	}
	return OperatingHours{Open: open, Close: close}, nil
}

// Contains reports whether [start, end) on the local wall clock lies within the hours.
func (h OperatingHours) Contains(start, end TimeOfDay) bool {
	return start >= h.Open && end <= h.Close
}

// GenerateSlots yields contiguous, non-overlapping slots of slotMinutes from
// open on date, stopping before a slot would pass close. The sequence is
// finite and can be ranged over again.
func GenerateSlots(z Zone, date Date, slotMinutes int, hours OperatingHours) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		if slotMinutes <= 0 {
			return
		}
		for start := hours.Open; start+TimeOfDay(slotMinutes) <= hours.Close; start += TimeOfDay(slotMinutes) {
			w := Window{
				Start: z.ToStorageTime(date, start),
				End:   z.ToStorageTime(date, start+TimeOfDay(slotMinutes)),
			}
			if !yield(w) {
				return
			}
		}
	}
}
