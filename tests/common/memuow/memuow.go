//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for use case tests. Every
// transaction holds one store-wide mutex, so transactions are serial and a
// failed one is rolled back to the state it started from.
package memuow

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/usecase/shared"
)

type Store struct {
	mu sync.Mutex

	students     map[user.StudentID]user.Student
	seats        map[int32]facility.Seat
	rooms        map[int32]facility.MeetingRoom
	reservations map[int64]*reservation.Reservation
	events       []shared.Event
	published    map[shared.EventID]time.Time
	nextID       int64

	// Pick chooses the index of the free seat handed out by FindFreeSeat.
	// The default takes the first candidate in id order.
	Pick func(n int) int

	// CreateErr, when set, fails every reservation insert.
	CreateErr error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		students:     map[user.StudentID]user.Student{},
		seats:        map[int32]facility.Seat{},
		rooms:        map[int32]facility.MeetingRoom{},
		reservations: map[int64]*reservation.Reservation{},
		published:    map[shared.EventID]time.Time{},
	}
}

func (s *Store) AddSeats(seats ...facility.Seat) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range seats {
		s.seats[seat.ID] = seat
	}
	return s
}

func (s *Store) AddRooms(rooms ...facility.MeetingRoom) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return s
}

// AddReservations inserts reservations as-is; zero ids are assigned.
func (s *Store) AddReservations(rs ...*reservation.Reservation) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rs {
		c := clone(r)
		if c.ID() == 0 {
			s.nextID++
			c.AssignID(s.nextID)
		} else if c.ID() > s.nextID {
			s.nextID = c.ID()
		}
		s.reservations[c.ID()] = c
	}
	return s
}

func (s *Store) Reservation(id int64) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return clone(r), true
}

// Reservations returns every stored reservation in id order.
func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.reservations))
	for _, id := range slices.Sorted(maps.Keys(s.reservations)) {
		out = append(out, clone(s.reservations[id]))
	}
	return out
}

func (s *Store) Events() []shared.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

func (s *Store) IsPublished(id shared.EventID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.published[id]
	return ok
}

func (s *Store) Student(id user.StudentID) (user.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[id]
	return st, ok
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.snapshot()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(saved)
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Within(ctx, fn)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{s: s})
}

type state struct {
	students     map[user.StudentID]user.Student
	seats        map[int32]facility.Seat
	rooms        map[int32]facility.MeetingRoom
	reservations map[int64]*reservation.Reservation
	events       []shared.Event
	published    map[shared.EventID]time.Time
	nextID       int64
}

func (s *Store) snapshot() state {
	rs := make(map[int64]*reservation.Reservation, len(s.reservations))
	for id, r := range s.reservations {
		rs[id] = clone(r)
	}
	return state{
		students:     maps.Clone(s.students),
		seats:        maps.Clone(s.seats),
		rooms:        maps.Clone(s.rooms),
		reservations: rs,
		events:       slices.Clone(s.events),
		published:    maps.Clone(s.published),
		nextID:       s.nextID,
	}
}

func (s *Store) restore(st state) {
	s.students = st.students
	s.seats = st.seats
	s.rooms = st.rooms
	s.reservations = st.reservations
	s.events = st.events
	s.published = st.published
	s.nextID = st.nextID
}

func clone(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.Owner(), r.Facility(), r.Window(), r.Status(),
		slices.Clone(r.Participants()), r.CreatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type memTx struct {
	s *Store
}

func (t *memTx) Users() shared.UserRepository               { return userRepo{t.s} }
func (t *memTx) Facilities() shared.FacilityRepository      { return facilityRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *memTx) Events() shared.EventRepository             { return eventRepo{t.s} }

type userRepo struct{ s *Store }

func (r userRepo) Upsert(_ context.Context, id user.StudentID, now time.Time) (*user.Student, error) {
	st, ok := r.s.students[id]
	if !ok {
		st = user.Student{ID: id, CreatedAt: now}
	}
	st.LastActiveAt = now
	r.s.students[id] = st
	return &st, nil
}

func (r userRepo) FindByID(_ context.Context, id user.StudentID) (*user.Student, error) {
	st, ok := r.s.students[id]
	if !ok {
		return nil, notFound("student not found")
	}
	return &st, nil
}

type facilityRepo struct{ s *Store }

func (r facilityRepo) LockFacility(_ context.Context, ref facility.Ref) (facility.Facility, error) {
	switch ref.Class {
	case facility.ClassSeat:
		if seat, ok := r.s.seats[ref.ID]; ok {
			return facility.FromSeat(seat), nil
		}
	case facility.ClassMeetingRoom:
		if room, ok := r.s.rooms[ref.ID]; ok {
			return facility.FromMeetingRoom(room), nil
		}
	}
	return facility.Facility{}, notFound("facility not found")
}

func (r facilityRepo) LockSeatPool(context.Context) error { return nil }

func (r facilityRepo) LockRequester(context.Context, user.StudentID) error { return nil }

func (r facilityRepo) FindFreeSeat(_ context.Context, w timeslot.Window, exclude []int32) (int32, bool, error) {
	var free []int32
	for _, id := range slices.Sorted(maps.Keys(r.s.seats)) {
		if !r.s.seats[id].Available || slices.Contains(exclude, id) {
			continue
		}
		if r.s.facilityBusy(facility.SeatRef(id), w, reservation.ActiveStatuses) {
			continue
		}
		free = append(free, id)
	}
	if len(free) == 0 {
		return 0, false, nil
	}
	i := 0
	if r.s.Pick != nil {
		i = r.s.Pick(len(free))
	}
	return free[i], true, nil
}

func (r facilityRepo) ListSeats(context.Context) ([]facility.Seat, error) {
	out := make([]facility.Seat, 0, len(r.s.seats))
	for _, id := range slices.Sorted(maps.Keys(r.s.seats)) {
		out = append(out, r.s.seats[id])
	}
	return out, nil
}

func (r facilityRepo) ListMeetingRooms(context.Context) ([]facility.MeetingRoom, error) {
	out := make([]facility.MeetingRoom, 0, len(r.s.rooms))
	for _, id := range slices.Sorted(maps.Keys(r.s.rooms)) {
		out = append(out, r.s.rooms[id])
	}
	return out, nil
}

func (r facilityRepo) UpsertSeat(_ context.Context, seat facility.Seat) error {
	r.s.seats[seat.ID] = seat
	return nil
}

func (r facilityRepo) UpsertMeetingRoom(_ context.Context, room facility.MeetingRoom) error {
	r.s.rooms[room.ID] = room
	return nil
}

func (s *Store) facilityBusy(ref facility.Ref, w timeslot.Window, statuses []reservation.Status) bool {
	for _, res := range s.reservations {
		if res.Facility() == ref && slices.Contains(statuses, res.Status()) && res.Window().Overlaps(w) {
			return true
		}
	}
	return false
}

type reservationRepo struct{ s *Store }

// Create rejects an active overlap on the same facility the way the
// exclusion constraint does.
func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if r.s.CreateErr != nil {
		return 0, r.s.CreateErr
	}
	if res.Status().IsActive() && r.s.facilityBusy(res.Facility(), res.Window(), reservation.ActiveStatuses) {
		return 0, infra.WrapRepoErr("failed to create reservation", nil, infra.KindDuplicateKey)
	}
	r.s.nextID++
	c := clone(res)
	c.AssignID(r.s.nextID)
	r.s.reservations[c.ID()] = c
	return c.ID(), nil
}

func (r reservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return clone(res), nil
}

func (r reservationRepo) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r reservationRepo) UpdateStatus(_ context.Context, id int64, status reservation.Status) error {
	res, ok := r.s.reservations[id]
	if !ok {
		return notFound("reservation not found")
	}
	r.s.reservations[id] = reservation.ReconstructReservation(
		res.ID(), res.Owner(), res.Facility(), res.Window(), status, res.Participants(), res.CreatedAt())
	return nil
}

func (r reservationRepo) ListByStudent(_ context.Context, id user.StudentID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, key := range slices.Sorted(maps.Keys(r.s.reservations)) {
		res := r.s.reservations[key]
		if res.Involves(id) {
			out = append(out, clone(res))
		}
	}
	return out, nil
}

func (r reservationRepo) HasFacilityConflict(_ context.Context, ref facility.Ref, w timeslot.Window, statuses []reservation.Status) (bool, error) {
	return r.s.facilityBusy(ref, w, statuses), nil
}

func (r reservationRepo) HasUserOverlap(_ context.Context, id user.StudentID, w timeslot.Window, scope shared.OverlapScope) (bool, error) {
	for _, res := range r.s.reservations {
		switch res.Facility().Class {
		case facility.ClassSeat:
			if !scope.Seats {
				continue
			}
		case facility.ClassMeetingRoom:
			if !scope.Rooms {
				continue
			}
		}
		if res.Involves(id) && slices.Contains(scope.Statuses, res.Status()) && res.Window().Overlaps(w) {
			return true, nil
		}
	}
	return false, nil
}

func (r reservationRepo) SumUsageMinutes(_ context.Context, f shared.UsageFilter) (int, error) {
	total := 0
	for _, res := range r.s.reservations {
		if res.Facility().Class != f.Class || !slices.Contains(f.Statuses, res.Status()) {
			continue
		}
		start := res.Window().Start
		if start.Before(f.Range.Start) || !start.Before(f.Range.End) {
			continue
		}
		bound := res.Owner() == f.StudentID
		if f.CountParticipation && !bound {
			bound = res.Involves(f.StudentID)
		}
		if bound {
			total += res.Window().Minutes()
		}
	}
	return total, nil
}

func (r reservationRepo) ListOccupancy(_ context.Context, class facility.Class, w timeslot.Window) ([]shared.Occupancy, error) {
	var out []shared.Occupancy
	for _, key := range slices.Sorted(maps.Keys(r.s.reservations)) {
		res := r.s.reservations[key]
		if res.Facility().Class == class && res.Status().IsActive() && res.Window().Overlaps(w) {
			out = append(out, shared.Occupancy{Facility: res.Facility(), Window: res.Window()})
		}
	}
	return out, nil
}

func (r reservationRepo) AdvanceStatuses(_ context.Context, now time.Time) (shared.AdvanceResult, error) {
	var out shared.AdvanceResult
	for id, res := range r.s.reservations {
		if res.Status() == reservation.StatusReserved && !res.Window().Start.After(now) {
			r.s.reservations[id] = reservation.ReconstructReservation(
				res.ID(), res.Owner(), res.Facility(), res.Window(), reservation.StatusInUse, res.Participants(), res.CreatedAt())
			out.Started++
		}
	}
	for id, res := range r.s.reservations {
		if res.Status() == reservation.StatusInUse && !res.Window().End.After(now) {
			r.s.reservations[id] = reservation.ReconstructReservation(
				res.ID(), res.Owner(), res.Facility(), res.Window(), reservation.StatusCompleted, res.Participants(), res.CreatedAt())
			out.Completed++
		}
	}
	return out, nil
}

type eventRepo struct{ s *Store }

func (r eventRepo) Append(_ context.Context, ev shared.Event) error {
	r.s.events = append(r.s.events, ev)
	return nil
}

func (r eventRepo) ListUnpublished(_ context.Context, limit int32) ([]shared.Event, error) {
	var out []shared.Event
	for _, ev := range r.s.events {
		if _, done := r.s.published[ev.ID]; done {
			continue
		}
		out = append(out, ev)
		if int32(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (r eventRepo) MarkPublished(_ context.Context, id shared.EventID, at time.Time) error {
	r.s.published[id] = at
	return nil
}
