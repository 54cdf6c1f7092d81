// Package timeslot converts between the facility's local wall clock and
// stored UTC instants, and generates the fixed-size slots of an operating day.
package timeslot

import (
	"fmt"
	"time"
)

// Zone is the facility's fixed-offset local time zone.
type Zone struct {
	loc *time.Location
}

func NewZone(name string, offsetSeconds int) Zone {
	return Zone{loc: time.FixedZone(name, offsetSeconds)}
}

func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// ToStorageTime interprets date and time of day on the local wall clock and
// returns the corresponding UTC instant.
func (z Zone) ToStorageTime(date Date, tod TimeOfDay) time.Time {
	midnight := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, z.Location())
	return midnight.Add(time.Duration(tod) * time.Minute).UTC()
}

// ToLocalWallClock is the inverse of ToStorageTime.
func (z Zone) ToLocalWallClock(t time.Time) time.Time {
	return t.In(z.Location())
}

func (z Zone) DateOf(t time.Time) Date {
	local := z.ToLocalWallClock(t)
	return Date{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

func (z Zone) TimeOfDayOf(t time.Time) TimeOfDay {
	local := z.ToLocalWallClock(t)
	return TimeOfDay(local.Hour()*60 + local.Minute())
}

// ClockRange returns the local clock bounds of a range that starts on its
// local date. An end on the following midnight is reported as 24:00.
func (z Zone) ClockRange(start, end time.Time) (TimeOfDay, TimeOfDay) {
	from, to := z.TimeOfDayOf(start), z.TimeOfDayOf(end)
	if to == 0 && z.DateOf(start) != z.DateOf(end) {
		to = EndOfDay
	}
	return from, to
}

// DayBounds returns the UTC half-open range of the local calendar day containing t.
func (z Zone) DayBounds(t time.Time) Window {
	d := z.DateOf(t)
	start := z.ToStorageTime(d, 0)
	return Window{Start: start, End: z.ToStorageTime(d.AddDays(1), 0)}
}

// WeekBounds returns the UTC half-open range of the local Monday to Sunday
// week containing t.
func (z Zone) WeekBounds(t time.Time) Window {
	d := z.DateOf(t)
	// time.Weekday has Sunday == 0
	back := (int(z.ToLocalWallClock(t).Weekday()) + 6) % 7
	monday := d.AddDays(-back)
	return Window{Start: z.ToStorageTime(monday, 0), End: z.ToStorageTime(monday.AddDays(7), 0)}
}

// Date is a local calendar date with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// TimeOfDay is minutes since local midnight. 24:00 is a valid closing time.
type TimeOfDay int

const (
	minutesPerDay = 24 * 60
	EndOfDay      = TimeOfDay(minutesPerDay)
)

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 || hour*60+minute > minutesPerDay {
		return 0, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds must be zero).
// Every field is exactly two ASCII digits.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	invalid := fmt.Errorf("invalid time %q: expected HH:MM", s)
	if len(s) != 5 && len(s) != 8 {
		return 0, invalid
	}

	var fields [3]int
	for i := 0; i*3 < len(s); i++ {
		if i > 0 && s[i*3-1] != ':' {
			return 0, invalid
		}
		hi, lo := s[i*3], s[i*3+1]
		if !isDigit(hi) || !isDigit(lo) {
			return 0, invalid
		}
		fields[i] = int(hi-'0')*10 + int(lo-'0')
	}
	if fields[2] != 0 {
		return 0, invalid
	}
	return NewTimeOfDay(fields[0], fields[1])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
