//go:build unit

package queries_test

import (
	"context"
	"testing"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/availability"
	"campus-reservation/internal/usecase/queries"
	"campus-reservation/internal/usecase/shared"
	"campus-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFacilities struct {
	seats []*queries.SeatView
	rooms []*queries.MeetingRoomView
}

func (f *fakeFacilities) FindSeats(context.Context) ([]*queries.SeatView, error) {
	return f.seats, nil
}

func (f *fakeFacilities) FindMeetingRooms(context.Context) ([]*queries.MeetingRoomView, error) {
	return f.rooms, nil
}

type fakeOccupancy struct {
	byClass map[facility.Class][]shared.Occupancy
	calls   int
	// onFind runs after the occupancy is loaded, before it is returned.
	onFind func()
}

func (f *fakeOccupancy) FindOccupancy(_ context.Context, class facility.Class, w timeslot.Window) ([]shared.Occupancy, error) {
	f.calls++
	var out []shared.Occupancy
	for _, o := range f.byClass[class] {
		if o.Window.Overlaps(w) {
			out = append(out, o)
		}
	}
	if f.onFind != nil {
		f.onFind()
	}
	return out, nil
}

// mapCache mirrors the generation rule of the Redis cache.
type mapCache struct {
	entries map[string][]shared.Occupancy
	gens    map[string]int64
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]shared.Occupancy{}, gens: map[string]int64{}}
}

func (c *mapCache) key(class facility.Class, date timeslot.Date) string {
	return class.String() + ":" + date.String()
}

func (c *mapCache) Get(_ context.Context, class facility.Class, date timeslot.Date) ([]shared.Occupancy, int64, bool) {
	k := c.key(class, date)
	occ, ok := c.entries[k]
	return occ, c.gens[k], ok
}

func (c *mapCache) Set(_ context.Context, class facility.Class, date timeslot.Date, gen int64, occ []shared.Occupancy) {
	k := c.key(class, date)
	if gen != c.gens[k] {
		return
	}
	c.entries[k] = occ
}

func (c *mapCache) Invalidate(_ context.Context, class facility.Class, date timeslot.Date) {
	k := c.key(class, date)
	c.gens[k]++
	delete(c.entries, k)
}

func occupied(ref facility.Ref, date, start, end string) shared.Occupancy {
	return shared.Occupancy{Facility: ref, Window: builder.LocalWindow(date, start, end)}
}

func mustDate(t *testing.T, s string) timeslot.Date {
	t.Helper()
	d, err := timeslot.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newStatusFixture(now string) (*fakeFacilities, *fakeOccupancy, *clock.MockClock) {
	maxCap := int32(6)
	facilities := &fakeFacilities{
		seats: []*queries.SeatView{
			{ID: 1, Available: true},
			{ID: 2, Available: true},
			{ID: 3, Available: false},
		},
		rooms: []*queries.MeetingRoomView{
			{ID: 1, MinCapacity: 3, MaxCapacity: &maxCap, Available: true},
			{ID: 2, MinCapacity: 3, MaxCapacity: &maxCap, Available: false},
		},
	}
	occ := &fakeOccupancy{byClass: map[facility.Class][]shared.Occupancy{
		facility.ClassSeat: {
			occupied(facility.SeatRef(1), "2025-03-05", "09:00", "11:00"),
			occupied(facility.SeatRef(2), "2025-03-05", "09:00", "11:00"),
			occupied(facility.SeatRef(1), "2025-03-05", "13:00", "15:00"),
		},
		facility.ClassMeetingRoom: {
			occupied(facility.MeetingRoomRef(1), "2025-03-05", "10:00", "11:00"),
		},
	}}
	return facilities, occ, clock.NewMockClock(builder.LocalTime("2025-03-04", now))
}

func TestMeetingRoomStatus(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	q := queries.NewStatusQueries(facilities, occ, shared.NoopOccupancyCache{}, availability.NewChecker(), builder.DefaultPolicy(), clk)

	view, err := q.MeetingRoomStatus(context.Background(), mustDate(t, "2025-03-05"))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-05", view.Date)
	assert.Equal(t, "09:00", view.OpenAt)
	assert.Equal(t, "18:00", view.CloseAt)
	assert.Equal(t, 60, view.SlotUnitMinutes)
	require.Len(t, view.Rooms, 2)

	room1 := view.Rooms[0]
	require.Len(t, room1.Slots, 9)
	assert.Equal(t, queries.SlotView{Start: "09:00", End: "10:00", Available: true}, room1.Slots[0])
	assert.Equal(t, queries.SlotView{Start: "10:00", End: "11:00", Available: false}, room1.Slots[1])
	assert.Equal(t, queries.SlotView{Start: "17:00", End: "18:00", Available: true}, room1.Slots[8])

	for _, slot := range view.Rooms[1].Slots {
		assert.False(t, slot.Available, "an unavailable room is never free")
	}
}

func TestSlotsClosingAtMidnight(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	policy := builder.DefaultPolicy()
	policy.Hours = timeslot.OperatingHours{Open: timeslot.MustTimeOfDay("10:00"), Close: timeslot.EndOfDay}
	q := queries.NewStatusQueries(facilities, occ, shared.NoopOccupancyCache{}, availability.NewChecker(), policy, clk)
	ctx := context.Background()
	date := mustDate(t, "2025-03-05")

	seats, err := q.SeatSlots(ctx, date)
	require.NoError(t, err)
	require.Len(t, seats.Slots, 7)
	assert.Equal(t, queries.SlotView{Start: "22:00", End: "24:00", Available: true}, seats.Slots[6])

	rooms, err := q.MeetingRoomStatus(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "24:00", rooms.CloseAt)
	last := rooms.Rooms[0].Slots[len(rooms.Rooms[0].Slots)-1]
	assert.Equal(t, "23:00", last.Start)
	assert.Equal(t, "24:00", last.End)
}

func TestSeatSlots(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	q := queries.NewStatusQueries(facilities, occ, shared.NoopOccupancyCache{}, availability.NewChecker(), builder.DefaultPolicy(), clk)

	t.Run("どれか一席でも空いていれば空き", func(t *testing.T) {
		view, err := q.SeatSlots(context.Background(), mustDate(t, "2025-03-05"))
		require.NoError(t, err)

		want := []queries.SlotView{
			{Start: "09:00", End: "11:00", Available: false},
			{Start: "11:00", End: "13:00", Available: true},
			{Start: "13:00", End: "15:00", Available: true},
			{Start: "15:00", End: "17:00", Available: true},
		}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 120, view.SlotUnitMinutes)
	})

	t.Run("終了した枠は空きにならない", func(t *testing.T) {
		clk.Set(builder.LocalTime("2025-03-05", "13:00"))
		defer clk.Set(builder.LocalTime("2025-03-04", "12:00"))

		view, err := q.SeatSlots(context.Background(), mustDate(t, "2025-03-05"))
		require.NoError(t, err)
		assert.False(t, view.Slots[1].Available, "11:00-13:00 has ended at 13:00")
		assert.True(t, view.Slots[2].Available, "13:00-15:00 is in progress and seat 2 is free")
	})
}

func TestSeatAvailability(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	q := queries.NewStatusQueries(facilities, occ, shared.NoopOccupancyCache{}, availability.NewChecker(), builder.DefaultPolicy(), clk)
	ctx := context.Background()
	date := mustDate(t, "2025-03-05")

	t.Run("利用可能な座席から重複を除く", func(t *testing.T) {
		view, err := q.SeatAvailability(ctx, date, timeslot.MustTimeOfDay("12:00"), timeslot.MustTimeOfDay("14:00"))
		require.NoError(t, err)
		assert.Equal(t, 2, view.TotalSeats)
		assert.Equal(t, []int32{2}, view.AvailableSeatIDs)
	})

	t.Run("接する予約は重複しない", func(t *testing.T) {
		view, err := q.SeatAvailability(ctx, date, timeslot.MustTimeOfDay("11:00"), timeslot.MustTimeOfDay("13:00"))
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2}, view.AvailableSeatIDs)
	})

	t.Run("全席埋まっていれば空配列", func(t *testing.T) {
		view, err := q.SeatAvailability(ctx, date, timeslot.MustTimeOfDay("09:00"), timeslot.MustTimeOfDay("10:00"))
		require.NoError(t, err)
		assert.NotNil(t, view.AvailableSeatIDs)
		assert.Empty(t, view.AvailableSeatIDs)
	})

	t.Run("不正な範囲", func(t *testing.T) {
		_, err := q.SeatAvailability(ctx, date, timeslot.MustTimeOfDay("14:00"), timeslot.MustTimeOfDay("12:00"))
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = q.SeatAvailability(ctx, date, timeslot.MustTimeOfDay("17:00"), timeslot.MustTimeOfDay("19:00"))
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = q.SeatAvailability(ctx, mustDate(t, "2025-03-04"), timeslot.MustTimeOfDay("09:00"), timeslot.MustTimeOfDay("11:00"))
		assert.True(t, errs.Is(err, errs.ErrValidation), "past ranges are rejected")
	})
}

func TestStatusUsesOccupancyCache(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	cache := newMapCache()
	q := queries.NewStatusQueries(facilities, occ, cache, availability.NewChecker(), builder.DefaultPolicy(), clk)
	ctx := context.Background()
	date := mustDate(t, "2025-03-05")

	_, err := q.SeatSlots(ctx, date)
	require.NoError(t, err)
	_, err = q.SeatSlots(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 1, occ.calls, "the second read is served from the cache")

	cache.Invalidate(ctx, facility.ClassSeat, date)
	_, err = q.SeatSlots(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, occ.calls)
}

func TestStatusDoesNotCacheOccupancyInvalidatedDuringRead(t *testing.T) {
	facilities, occ, clk := newStatusFixture("12:00")
	cache := newMapCache()
	q := queries.NewStatusQueries(facilities, occ, cache, availability.NewChecker(), builder.DefaultPolicy(), clk)
	ctx := context.Background()
	date := mustDate(t, "2025-03-05")

	// a booking commits between the load and the write-back
	occ.onFind = func() {
		occ.onFind = nil
		occ.byClass[facility.ClassSeat] = append(occ.byClass[facility.ClassSeat],
			occupied(facility.SeatRef(1), "2025-03-05", "09:00", "11:00"))
		cache.Invalidate(ctx, facility.ClassSeat, date)
	}

	first, err := q.SeatSlots(ctx, date)
	require.NoError(t, err)
	assert.True(t, first.Slots[0].Available, "the first read saw the old occupancy")

	second, err := q.SeatSlots(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, occ.calls, "the stale list was not cached")
	assert.False(t, second.Slots[0].Available)
}
