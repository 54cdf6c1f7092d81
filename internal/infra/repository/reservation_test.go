//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/infra"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/pkg/pgconv"
	"campus-reservation/internal/usecase/shared"
	"campus-reservation/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) AddParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.AddParticipantParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationQueries) GetReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservation, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).(sqlc.Reservation), args.Error(1)
}

func (m *MockReservationQueries) GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, reservationID int64) (sqlc.Reservation, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).(sqlc.Reservation), args.Error(1)
}

func (m *MockReservationQueries) ListParticipants(ctx context.Context, db sqlc.DBTX, reservationID int64) ([]int64, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReservationQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationQueries) ListReservationsByStudent(ctx context.Context, db sqlc.DBTX, studentID int64) ([]sqlc.ListReservationsByStudentRow, error) {
	args := m.Called(ctx, db, studentID)
	return args.Get(0).([]sqlc.ListReservationsByStudentRow), args.Error(1)
}

func (m *MockReservationQueries) HasFacilityConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.HasFacilityConflictParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationQueries) HasUserOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.HasUserOverlapParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationQueries) SumUsageMinutes(ctx context.Context, db sqlc.DBTX, arg sqlc.SumUsageMinutesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) ListOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupancyParams) ([]sqlc.ListOccupancyRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListOccupancyRow), args.Error(1)
}

func (m *MockReservationQueries) AdvanceReservedToInUse(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationQueries) AdvanceInUseToCompleted(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateReservation(t *testing.T) {
	res := builder.NewReservationBuilder().
		WithOwner(202300001).
		WithRoom(2, 202300002, 202300003).
		At("2025-03-05", "09:00", "10:00").
		Build()

	t.Run("success with participants", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
			return p.StudentID == 202300001 && !p.SeatID.Valid && p.MeetingRoomID.Int32 == 2
		})).Return(int64(7), nil)
		mockQueries.On("AddParticipant", mock.Anything, mock.Anything, sqlc.AddParticipantParams{ReservationID: 7, ParticipantStudentID: 202300002}).Return(nil)
		mockQueries.On("AddParticipant", mock.Anything, mock.Anything, sqlc.AddParticipantParams{ReservationID: 7, ParticipantStudentID: 202300003}).Return(nil)

		id, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), res)

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("overlap constraint is a check violation", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), &pgconn.PgError{Code: pgconv.CodeCheckViolation})

		_, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), res)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
		mockQueries.AssertNotCalled(t, "AddParticipant", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHasFacilityConflictParams(t *testing.T) {
	w := builder.LocalWindow("2025-03-05", "09:00", "11:00")
	mockQueries := new(MockReservationQueries)
	mockQueries.On("HasFacilityConflict", mock.Anything, mock.Anything, sqlc.HasFacilityConflictParams{
		SeatID:    pgconv.Int32ToPgtype(4),
		Statuses:  []string{"RESERVED", "IN_USE"},
		StartTime: pgconv.TimeToPgtype(w.Start),
		EndTime:   pgconv.TimeToPgtype(w.End),
	}).Return(true, nil)

	got, err := NewReservationRepository(mockQueries, nil).
		HasFacilityConflict(context.Background(), facility.SeatRef(4), w, reservation.ActiveStatuses)

	require.NoError(t, err)
	assert.True(t, got)
	mockQueries.AssertExpectations(t)
}

func TestSumUsageMinutesParams(t *testing.T) {
	start := builder.LocalTime("2025-03-03", "00:00")
	w := timeslot.Window{Start: start, End: start.AddDate(0, 0, 7)}

	mockQueries := new(MockReservationQueries)
	mockQueries.On("SumUsageMinutes", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.SumUsageMinutesParams) bool {
		return p.Rooms && !p.Seats && p.CountParticipation && p.StudentID == 202300002 &&
			p.RangeStart.Time.Equal(w.Start) && p.RangeEnd.Time.Equal(w.End)
	})).Return(int64(180), nil)

	got, err := NewReservationRepository(mockQueries, nil).SumUsageMinutes(context.Background(), shared.UsageFilter{
		StudentID:          202300002,
		Class:              facility.ClassMeetingRoom,
		Range:              w,
		Statuses:           reservation.UsageStatuses,
		CountParticipation: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 180, got)
	mockQueries.AssertExpectations(t)
}

func TestAdvanceStatuses(t *testing.T) {
	now := time.Date(2025, 3, 5, 4, 0, 0, 0, time.UTC)
	ts := pgconv.TimeToPgtype(now)

	t.Run("starts then completes", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		started := mockQueries.On("AdvanceReservedToInUse", mock.Anything, mock.Anything, ts).Return(int64(2), nil)
		mockQueries.On("AdvanceInUseToCompleted", mock.Anything, mock.Anything, ts).Return(int64(3), nil).NotBefore(started)

		got, err := NewReservationRepository(mockQueries, nil).AdvanceStatuses(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, shared.AdvanceResult{Started: 2, Completed: 3}, got)
		mockQueries.AssertExpectations(t)
	})

	t.Run("failure in the first pass skips the second", func(t *testing.T) {
		mockQueries := new(MockReservationQueries)
		mockQueries.On("AdvanceReservedToInUse", mock.Anything, mock.Anything, ts).Return(int64(0), assert.AnError)

		_, err := NewReservationRepository(mockQueries, nil).AdvanceStatuses(context.Background(), now)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertNotCalled(t, "AdvanceInUseToCompleted", mock.Anything, mock.Anything, mock.Anything)
	})
}
