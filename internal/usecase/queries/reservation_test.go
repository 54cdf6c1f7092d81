//go:build unit

package queries_test

import (
	"context"
	"testing"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/queries"
	"campus-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservationStore struct {
	views []*queries.ReservationView
}

func (f *fakeReservationStore) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	for _, v := range f.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (f *fakeReservationStore) FindByStudent(_ context.Context, studentID int64) ([]*queries.ReservationView, error) {
	var out []*queries.ReservationView
	for _, v := range f.views {
		if v.Involves(studentID) {
			out = append(out, v)
		}
	}
	return out, nil
}

const (
	owner       user.StudentID = 202300001
	participant user.StudentID = 202300002
	stranger    user.StudentID = 202300009
)

func newReservationStore() *fakeReservationStore {
	return &fakeReservationStore{views: []*queries.ReservationView{
		queries.NewReservationView(builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 1 }).
			WithOwner(owner).WithSeat(1).At("2025-03-05", "09:00", "11:00").Build()),
		queries.NewReservationView(builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 2 }).
			WithOwner(owner).WithRoom(1, participant, 202300003, 202300004).At("2025-03-06", "09:00", "10:00").Build()),
		queries.NewReservationView(builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ID = 3 }).
			WithOwner(owner).WithSeat(2).At("2025-03-08", "13:00", "15:00").Build()),
	}}
}

func TestGetByID(t *testing.T) {
	q := queries.NewReservationQueries(newReservationStore(), builder.KST)
	ctx := context.Background()

	v, err := q.GetByID(ctx, owner, 2)
	require.NoError(t, err)
	assert.Equal(t, facility.ClassMeetingRoom, v.Class)

	_, err = q.GetByID(ctx, participant, 2)
	assert.NoError(t, err, "participants may read the booking")

	_, err = q.GetByID(ctx, stranger, 2)
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = q.GetByID(ctx, owner, 42)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestListMine(t *testing.T) {
	q := queries.NewReservationQueries(newReservationStore(), builder.KST)
	ctx := context.Background()
	date := func(s string) *timeslot.Date {
		d, err := timeslot.ParseDate(s)
		require.NoError(t, err)
		return &d
	}
	ids := func(vs []*queries.ReservationView) []int64 {
		out := make([]int64, len(vs))
		for i, v := range vs {
			out[i] = v.ID
		}
		return out
	}
	seat := facility.ClassSeat

	tests := []struct {
		name   string
		actor  user.StudentID
		filter queries.MyReservationsFilter
		want   []int64
	}{
		{name: "フィルタなし", actor: owner, want: []int64{1, 2, 3}},
		{name: "参加者としての予約", actor: participant, want: []int64{2}},
		{name: "種別で絞り込み", actor: owner, filter: queries.MyReservationsFilter{Class: &seat}, want: []int64{1, 3}},
		{name: "期間は両端を含む", actor: owner, filter: queries.MyReservationsFilter{From: date("2025-03-06"), To: date("2025-03-08")}, want: []int64{2, 3}},
		{name: "開始日のみ", actor: owner, filter: queries.MyReservationsFilter{From: date("2025-03-07")}, want: []int64{3}},
		{name: "該当なし", actor: stranger, want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.ListMine(ctx, tt.actor, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("from > to は拒否", func(t *testing.T) {
		_, err := q.ListMine(ctx, owner, queries.MyReservationsFilter{From: date("2025-03-08"), To: date("2025-03-06")})
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
