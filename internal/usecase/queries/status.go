package queries

import (
	"context"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/availability"
	"campus-reservation/internal/usecase/shared"
)

type StatusQueries interface {
	MeetingRoomStatus(ctx context.Context, date timeslot.Date) (*MeetingRoomStatusView, error)
	SeatSlots(ctx context.Context, date timeslot.Date) (*SeatSlotsView, error)
	SeatAvailability(ctx context.Context, date timeslot.Date, start, end timeslot.TimeOfDay) (*SeatAvailabilityView, error)
}

type OccupancyReadStore interface {
	FindOccupancy(ctx context.Context, class facility.Class, w timeslot.Window) ([]shared.Occupancy, error)
}

type statusQueriesImpl struct {
	facilities FacilityReadStore
	occupancy  OccupancyReadStore
	cache      shared.OccupancyCache
	checker    *availability.Checker
	policy     reservation.Policy
	clock      clock.Clock
}

func NewStatusQueries(
	facilities FacilityReadStore,
	occupancy OccupancyReadStore,
	cache shared.OccupancyCache,
	checker *availability.Checker,
	policy reservation.Policy,
	clock clock.Clock,
) StatusQueries {
	return &statusQueriesImpl{
		facilities: facilities,
		occupancy:  occupancy,
		cache:      cache,
		checker:    checker,
		policy:     policy,
		clock:      clock,
	}
}

func (q *statusQueriesImpl) MeetingRoomStatus(ctx context.Context, date timeslot.Date) (*MeetingRoomStatusView, error) {
	rooms, err := q.facilities.FindMeetingRooms(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := q.snapshot(ctx, facility.ClassMeetingRoom, date)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	slotMinutes := q.policy.MeetingRoom.SlotMinutes
	view := &MeetingRoomStatusView{
		Date:            date.String(),
		OpenAt:          q.policy.Hours.Open.String(),
		CloseAt:         q.policy.Hours.Close.String(),
		SlotUnitMinutes: slotMinutes,
		Rooms:           make([]FacilitySlotsView, 0, len(rooms)),
	}

	for _, room := range rooms {
		ref := facility.MeetingRoomRef(room.ID)
		row := FacilitySlotsView{FacilityID: room.ID, Slots: []SlotView{}}
		for slot := range timeslot.GenerateSlots(q.policy.Zone, date, slotMinutes, q.policy.Hours) {
			free := room.Available && !slot.Ended(now)
			if free {
				conflict, err := q.checker.HasResourceConflict(ctx, snap, ref, slot)
				if err != nil {
					return nil, err
				}
				free = !conflict
			}
			row.Slots = append(row.Slots, q.slotView(slot, free))
		}
		view.Rooms = append(view.Rooms, row)
	}
	return view, nil
}

func (q *statusQueriesImpl) SeatSlots(ctx context.Context, date timeslot.Date) (*SeatSlotsView, error) {
	seats, err := q.availableSeats(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := q.snapshot(ctx, facility.ClassSeat, date)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	slotMinutes := q.policy.Seat.SlotMinutes
	view := &SeatSlotsView{
		Date:            date.String(),
		SlotUnitMinutes: slotMinutes,
		Slots:           []SlotView{},
	}

	for slot := range timeslot.GenerateSlots(q.policy.Zone, date, slotMinutes, q.policy.Hours) {
		free := false
		if !slot.Ended(now) {
			ids, err := q.freeSeats(ctx, snap, seats, slot, 1)
			if err != nil {
				return nil, err
			}
			free = len(ids) > 0
		}
		view.Slots = append(view.Slots, q.slotView(slot, free))
	}
	return view, nil
}

func (q *statusQueriesImpl) SeatAvailability(ctx context.Context, date timeslot.Date, start, end timeslot.TimeOfDay) (*SeatAvailabilityView, error) {
	if start >= end {
		return nil, errs.Validation("end time must be after start time")
	}
	if !q.policy.Hours.Contains(start, end) {
		return nil, errs.Validation("the range must lie between %s and %s", q.policy.Hours.Open, q.policy.Hours.Close)
	}
	window := timeslot.Window{
		Start: q.policy.Zone.ToStorageTime(date, start),
		End:   q.policy.Zone.ToStorageTime(date, end),
	}
	if window.Ended(q.clock.Now()) {
		return nil, errs.Validation("the requested range has already passed")
	}

	seats, err := q.availableSeats(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := q.snapshot(ctx, facility.ClassSeat, date)
	if err != nil {
		return nil, err
	}
	free, err := q.freeSeats(ctx, snap, seats, window, 0)
	if err != nil {
		return nil, err
	}

	return &SeatAvailabilityView{
		Date:             date.String(),
		Start:            start.String(),
		End:              end.String(),
		TotalSeats:       len(seats),
		AvailableSeatIDs: free,
	}, nil
}

func (q *statusQueriesImpl) availableSeats(ctx context.Context) ([]int32, error) {
	seats, err := q.facilities.FindSeats(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(seats))
	for _, s := range seats {
		if s.Available {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

// freeSeats returns the seats with no conflict in w, stopping after limit
// hits when limit is positive.
func (q *statusQueriesImpl) freeSeats(ctx context.Context, snap *availability.Snapshot, seats []int32, w timeslot.Window, limit int) ([]int32, error) {
	free := []int32{}
	for _, id := range seats {
		conflict, err := q.checker.HasResourceConflict(ctx, snap, facility.SeatRef(id), w)
		if err != nil {
			return nil, err
		}
		if conflict {
			continue
		}
		free = append(free, id)
		if limit > 0 && len(free) >= limit {
			break
		}
	}
	return free, nil
}

func (q *statusQueriesImpl) snapshot(ctx context.Context, class facility.Class, date timeslot.Date) (*availability.Snapshot, error) {
	occ, gen, ok := q.cache.Get(ctx, class, date)
	if ok {
		return availability.NewSnapshot(occ), nil
	}

	day := q.policy.Zone.DayBounds(q.policy.Zone.ToStorageTime(date, 0))
	occ, err := q.occupancy.FindOccupancy(ctx, class, day)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, class, date, gen, occ)
	return availability.NewSnapshot(occ), nil
}

func (q *statusQueriesImpl) slotView(w timeslot.Window, free bool) SlotView {
	start, end := q.policy.Zone.ClockRange(w.Start, w.End)
	return SlotView{
		Start:     start.String(),
		End:       end.String(),
		Available: free,
	}
}
