//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/availability"
	"campus-reservation/internal/usecase/commands"
	"campus-reservation/internal/usecase/quota"
	"campus-reservation/internal/usecase/shared"
	"campus-reservation/tests/common/builder"
	"campus-reservation/tests/common/memuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	alice   user.StudentID = 202300001
	bob     user.StudentID = 202300002
	carol   user.StudentID = 202300003
	dave    user.StudentID = 202300004
	erin    user.StudentID = 202300005
	blocked user.StudentID = 202099999
)

type invalidation struct {
	class facility.Class
	date  string
}

type recordingCache struct {
	shared.NoopOccupancyCache
	mu          sync.Mutex
	invalidated []invalidation
}

func (c *recordingCache) Invalidate(_ context.Context, class facility.Class, date timeslot.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, invalidation{class: class, date: date.String()})
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	store *memuow.Store
	cache *recordingCache
	clock *clock.MockClock
	cmds  commands.ReservationCommands
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	maxCap := int32(6)
	s.store = memuow.New().
		AddSeats(
			facility.Seat{ID: 1, Available: true},
			facility.Seat{ID: 2, Available: true},
			facility.Seat{ID: 3, Available: false},
		).
		AddRooms(
			facility.MeetingRoom{ID: 1, MinCapacity: 3, MaxCapacity: &maxCap, Available: true},
			facility.MeetingRoom{ID: 2, MinCapacity: 3, MaxCapacity: &maxCap, Available: true},
			facility.MeetingRoom{ID: 3, MinCapacity: 3, MaxCapacity: &maxCap, Available: true},
		)
	s.cache = &recordingCache{}
	s.clock = clock.NewMockClock(builder.LocalTime("2025-03-04", "12:00"))

	policy := builder.DefaultPolicy()
	s.cmds = commands.NewReservationCommands(
		s.store,
		availability.NewChecker(),
		quota.NewAccountant(policy),
		policy,
		user.NewBlocklist(blocked.Int64()),
		s.cache,
		s.clock,
	)
}

func seatInput(who user.StudentID, seat int32, date, start, end string) commands.CreateSeatReservationInput {
	in := commands.CreateSeatReservationInput{
		Requester: who,
		Date:      mustDate(date),
		Start:     timeslot.MustTimeOfDay(start),
		End:       timeslot.MustTimeOfDay(end),
	}
	if seat > 0 {
		in.SeatID = &seat
	}
	return in
}

func roomInput(who user.StudentID, room int32, date, start, end string, participants ...user.StudentID) commands.CreateRoomReservationInput {
	return commands.CreateRoomReservationInput{
		Requester:    who,
		RoomID:       room,
		Date:         mustDate(date),
		Start:        timeslot.MustTimeOfDay(start),
		End:          timeslot.MustTimeOfDay(end),
		Participants: participants,
	}
}

func mustDate(s string) timeslot.Date {
	d, err := timeslot.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ================================================================================
// Seats
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreateSeatReservation() {
	ctx := context.Background()

	s.Run("指定座席を予約できる", func() {
		view, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
		s.Require().NoError(err)

		s.Equal(facility.ClassSeat, view.Class)
		s.Equal(int32(1), view.FacilityID)
		s.Equal(alice.Int64(), view.OwnerID)
		s.Equal(reservation.StatusReserved.String(), view.Status)
		s.Equal(builder.LocalWindow("2025-03-05", "09:00", "11:00").Start, view.StartTime)

		_, known := s.store.Student(alice)
		s.True(known, "requester is recorded on first booking")

		events := s.store.Events()
		s.Require().Len(events, 1)
		s.Equal(shared.EventReservationCreated, events[0].Kind)
		s.Equal(view.ID, events[0].ReservationID)

		s.Contains(s.cache.invalidated, invalidation{class: facility.ClassSeat, date: "2025-03-05"})
	})

	s.Run("同じ座席の重複時間は衝突", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(bob, 1, "2025-03-05", "10:59", "12:59"))
		s.True(errs.Is(err, errs.ErrConflict), "one minute of overlap is a conflict: %v", err)
	})

	s.Run("終了時刻と開始時刻が接する予約は衝突しない", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(bob, 1, "2025-03-05", "11:00", "13:00"))
		s.NoError(err)
	})

	s.Run("同じ利用者の重複予約は別座席でも衝突", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 2, "2025-03-05", "10:00", "12:00"))
		s.True(errs.Is(err, errs.ErrConflict), "%v", err)
	})

	s.Run("利用不可の座席は予約できない", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 3, "2025-03-05", "09:00", "11:00"))
		s.True(errs.Is(err, errs.ErrConflict), "%v", err)
	})

	s.Run("存在しない座席", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 99, "2025-03-05", "09:00", "11:00"))
		s.True(errs.Is(err, errs.ErrNotFound), "%v", err)
	})

	s.Run("過去の時間帯は予約できない", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 2, "2025-03-04", "11:00", "13:00"))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("スロット長以外は拒否", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 2, "2025-03-05", "09:00", "10:00"))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("営業時間外は拒否", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 2, "2025-03-05", "17:00", "19:00"))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("ブロックされた学籍番号", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(blocked, 2, "2025-03-05", "09:00", "11:00"))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})
}

func (s *ReservationCommandsTestSuite) TestCreateStorageErrors() {
	ctx := context.Background()

	s.Run("一意制約違反は衝突", func() {
		s.store.CreateErr = infra.WrapRepoErr("failed to create reservation", nil, infra.KindDuplicateKey)
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
		s.True(errs.Is(err, errs.ErrConflict), "%v", err)
	})

	s.Run("CHECK 制約違反は内部エラーのまま", func() {
		s.store.CreateErr = infra.WrapRepoErr("failed to create reservation", nil, infra.KindCheckViolated)
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
		s.Require().Error(err)
		s.False(errs.Is(err, errs.ErrConflict), "%v", err)
		s.True(infra.IsKind(err, infra.KindCheckViolated), "%v", err)
	})

	s.store.CreateErr = nil
	s.Empty(s.store.Reservations())
	s.Empty(s.store.Events())
}

func (s *ReservationCommandsTestSuite) TestRandomSeatAssignment() {
	ctx := context.Background()

	first, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 0, "2025-03-05", "09:00", "11:00"))
	s.Require().NoError(err)
	second, err := s.cmds.CreateSeatReservation(ctx, seatInput(bob, 0, "2025-03-05", "09:00", "11:00"))
	s.Require().NoError(err)

	s.NotEqual(first.FacilityID, second.FacilityID)
	s.ElementsMatch([]int32{1, 2}, []int32{first.FacilityID, second.FacilityID}, "only available seats are handed out")

	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(carol, 0, "2025-03-05", "09:00", "11:00"))
	s.True(errs.Is(err, errs.ErrNoCandidate), "%v", err)
	s.True(errs.Is(err, errs.ErrConflict), "NoCandidate is also a Conflict")

	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(carol, 0, "2025-03-05", "11:00", "13:00"))
	s.NoError(err, "the next slot is free again")
}

func (s *ReservationCommandsTestSuite) TestSeatDailyQuota() {
	ctx := context.Background()

	_, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
	s.Require().NoError(err)
	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "11:00", "13:00"))
	s.Require().NoError(err, "exactly 240 minutes is allowed")

	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(alice, 2, "2025-03-05", "13:00", "15:00"))
	s.True(errs.Is(err, errs.ErrLimitExceeded), "%v", err)

	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(alice, 2, "2025-03-06", "13:00", "15:00"))
	s.NoError(err, "the limit resets on the next local day")
}

func (s *ReservationCommandsTestSuite) TestCanceledReservationsDoNotCountTowardQuota() {
	ctx := context.Background()

	v, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
	s.Require().NoError(err)
	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "11:00", "13:00"))
	s.Require().NoError(err)
	_, err = s.cmds.CancelReservation(ctx, v.ID, alice)
	s.Require().NoError(err)

	_, err = s.cmds.CreateSeatReservation(ctx, seatInput(alice, 2, "2025-03-05", "13:00", "15:00"))
	s.NoError(err)
}

func TestConcurrentBookingsOfOneSeat(t *testing.T) {
	store := memuow.New().AddSeats(facility.Seat{ID: 1, Available: true})
	policy := builder.DefaultPolicy()
	cmds := commands.NewReservationCommands(
		store,
		availability.NewChecker(),
		quota.NewAccountant(policy),
		policy,
		user.NewBlocklist(),
		shared.NoopOccupancyCache{},
		clock.NewMockClock(builder.LocalTime("2025-03-04", "12:00")),
	)

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := range n {
		wg.Add(1)
		go func(who user.StudentID) {
			defer wg.Done()
			_, err := cmds.CreateSeatReservation(context.Background(), seatInput(who, 1, "2025-03-05", "09:00", "11:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, errs.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(user.StudentID(202300100 + i))
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicts)
	require.Len(t, store.Reservations(), 1)
}

// ================================================================================
// Meeting rooms
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreateRoomReservation() {
	ctx := context.Background()

	s.Run("参加者を含めて予約できる", func() {
		view, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 1, "2025-03-05", "09:00", "10:00", bob, carol, dave))
		s.Require().NoError(err)
		s.Equal(facility.ClassMeetingRoom, view.Class)
		s.ElementsMatch([]int64{bob.Int64(), carol.Int64(), dave.Int64()}, view.Participants)

		for _, id := range []user.StudentID{bob, carol, dave} {
			_, known := s.store.Student(id)
			s.True(known, "participant %s is recorded", id)
		}
	})

	s.Run("参加者の時間が重なると衝突", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(erin, 2, "2025-03-05", "09:00", "10:00", bob, 202300010, 202300011))
		s.True(errs.Is(err, errs.ErrConflict), "%v", err)
	})

	s.Run("参加者が座席を持っていても衝突", func() {
		_, err := s.cmds.CreateSeatReservation(ctx, seatInput(erin, 1, "2025-03-05", "13:00", "15:00"))
		s.Require().NoError(err)
		_, err = s.cmds.CreateRoomReservation(ctx, roomInput(202300020, 2, "2025-03-05", "14:00", "15:00", erin, 202300021, 202300022))
		s.True(errs.Is(err, errs.ErrConflict), "%v", err)
	})

	s.Run("参加者が足りない", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00", bob, carol))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("予約者を参加者に含められない", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00", alice, bob, carol))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("参加者の重複", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00", bob, bob, carol))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("最大定員を超える", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00",
			202300031, 202300032, 202300033, 202300034, 202300035, 202300036))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("ブロックされた参加者", func() {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00", bob, carol, blocked))
		s.True(errs.Is(err, errs.ErrValidation), "%v", err)
	})

	s.Run("失敗した予約は何も残さない", func() {
		before := len(s.store.Reservations())
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 3, "2025-03-06", "09:00", "10:00", bob, carol))
		s.Require().Error(err)
		s.Len(s.store.Reservations(), before)
	})
}

func (s *ReservationCommandsTestSuite) TestRoomQuotaChargesParticipants() {
	ctx := context.Background()

	_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 1, "2025-03-05", "09:00", "10:00", bob, carol, dave))
	s.Require().NoError(err)
	_, err = s.cmds.CreateRoomReservation(ctx, roomInput(erin, 1, "2025-03-05", "10:00", "11:00", bob, 202300040, 202300041))
	s.Require().NoError(err, "bob reaches exactly 120 minutes")

	_, err = s.cmds.CreateRoomReservation(ctx, roomInput(202300042, 2, "2025-03-05", "11:00", "12:00", bob, 202300043, 202300044))
	s.True(errs.Is(err, errs.ErrLimitExceeded), "%v", err)
}

func (s *ReservationCommandsTestSuite) TestRoomWeeklyQuota() {
	ctx := context.Background()

	// Wednesday to Friday of the same week: 60 minutes each day plus 120 on Thursday.
	days := []struct{ date, start, end string }{
		{"2025-03-05", "09:00", "10:00"},
		{"2025-03-06", "09:00", "10:00"},
		{"2025-03-06", "10:00", "11:00"},
		{"2025-03-07", "09:00", "10:00"},
		{"2025-03-07", "10:00", "11:00"},
	}
	for i, d := range days {
		_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 1, d.date, d.start, d.end,
			user.StudentID(202300200+i*3), user.StudentID(202300201+i*3), user.StudentID(202300202+i*3)))
		s.Require().NoError(err, "booking %d", i)
	}

	_, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 1, "2025-03-08", "09:00", "10:00", 202300300, 202300301, 202300302))
	s.True(errs.Is(err, errs.ErrLimitExceeded), "%v", err)

	_, err = s.cmds.CreateRoomReservation(ctx, roomInput(alice, 1, "2025-03-10", "09:00", "10:00", 202300300, 202300301, 202300302))
	s.NoError(err, "a new week starts on Monday")
}

// ================================================================================
// Cancel
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCancelReservation() {
	ctx := context.Background()

	s.Run("予約者は取消できる", func() {
		v, err := s.cmds.CreateSeatReservation(ctx, seatInput(alice, 1, "2025-03-05", "09:00", "11:00"))
		s.Require().NoError(err)

		canceled, err := s.cmds.CancelReservation(ctx, v.ID, alice)
		s.Require().NoError(err)
		s.Equal(reservation.StatusCanceled.String(), canceled.Status)

		stored, ok := s.store.Reservation(v.ID)
		s.Require().True(ok)
		s.Equal(reservation.StatusCanceled, stored.Status())

		events := s.store.Events()
		s.Equal(shared.EventReservationCanceled, events[len(events)-1].Kind)

		_, err = s.cmds.CreateSeatReservation(ctx, seatInput(bob, 1, "2025-03-05", "09:00", "11:00"))
		s.NoError(err, "a canceled reservation frees the seat")
	})

	s.Run("二重取消", func() {
		v, err := s.cmds.CreateSeatReservation(ctx, seatInput(carol, 2, "2025-03-06", "09:00", "11:00"))
		s.Require().NoError(err)
		_, err = s.cmds.CancelReservation(ctx, v.ID, carol)
		s.Require().NoError(err)

		_, err = s.cmds.CancelReservation(ctx, v.ID, carol)
		s.True(errs.Is(err, errs.ErrAlreadyCanceled), "%v", err)
	})

	s.Run("他人の予約は取消できない", func() {
		v, err := s.cmds.CreateRoomReservation(ctx, roomInput(alice, 2, "2025-03-07", "09:00", "10:00", bob, carol, dave))
		s.Require().NoError(err)

		_, err = s.cmds.CancelReservation(ctx, v.ID, bob)
		s.True(errs.Is(err, errs.ErrForbidden), "participants cannot cancel: %v", err)
	})

	s.Run("利用中は取消できない", func() {
		s.store.AddReservations(builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 500 }).
			WithOwner(erin).
			WithStatus(reservation.StatusInUse).
			Build())

		_, err := s.cmds.CancelReservation(ctx, 500, erin)
		s.True(errs.Is(err, errs.ErrForbidden), "%v", err)
	})

	s.Run("存在しない予約", func() {
		_, err := s.cmds.CancelReservation(ctx, 9999, alice)
		s.True(errs.Is(err, errs.ErrNotFound), "%v", err)
	})
}
