//go:build unit || e2e

package builder

import (
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
)

// KST is the zone every builder interprets local dates and times in.
var KST = timeslot.NewZone("Asia/Seoul", 9*60*60)

type ReservationBuilder struct {
	ID           int64
	Owner        user.StudentID
	Facility     facility.Ref
	Date         string
	Start        string
	End          string
	Status       reservation.Status
	Participants []user.StudentID
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        1,
		Owner:     202300001,
		Facility:  facility.SeatRef(1),
		Date:      "2025-03-05",
		Start:     "09:00",
		End:       "11:00",
		Status:    reservation.StatusReserved,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithOwner(id user.StudentID) *ReservationBuilder {
	b.Owner = id
	return b
}

func (b *ReservationBuilder) WithSeat(id int32) *ReservationBuilder {
	b.Facility = facility.SeatRef(id)
	b.Participants = nil
	return b
}

func (b *ReservationBuilder) WithRoom(id int32, participants ...user.StudentID) *ReservationBuilder {
	b.Facility = facility.MeetingRoomRef(id)
	b.Participants = participants
	return b
}

func (b *ReservationBuilder) At(date, start, end string) *ReservationBuilder {
	b.Date, b.Start, b.End = date, start, end
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) Window() timeslot.Window {
	return LocalWindow(b.Date, b.Start, b.End)
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.Owner, b.Facility, b.Window(), b.Status, b.Participants, b.CreatedAt)
}

// LocalWindow panics on malformed input; it is only for literals in tests.
func LocalWindow(date, start, end string) timeslot.Window {
	d, err := timeslot.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return timeslot.Window{
		Start: KST.ToStorageTime(d, timeslot.MustTimeOfDay(start)),
		End:   KST.ToStorageTime(d, timeslot.MustTimeOfDay(end)),
	}
}

// LocalTime is the storage instant of a local date and time.
func LocalTime(date, tod string) time.Time {
	d, err := timeslot.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return KST.ToStorageTime(d, timeslot.MustTimeOfDay(tod))
}

// DefaultPolicy mirrors the production defaults.
func DefaultPolicy() reservation.Policy {
	return reservation.Policy{
		Zone: KST,
		Hours: timeslot.OperatingHours{
			Open:  timeslot.MustTimeOfDay("09:00"),
			Close: timeslot.MustTimeOfDay("18:00"),
		},
		Seat:            reservation.Limits{SlotMinutes: 120, DailyLimitMinutes: 240},
		MeetingRoom:     reservation.Limits{SlotMinutes: 60, DailyLimitMinutes: 120, WeeklyLimitMinutes: 300},
		MinParticipants: 3,
	}
}
