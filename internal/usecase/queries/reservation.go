package queries

import (
	"context"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/infra"
	"campus-reservation/internal/pkg/errs"
)

// MyReservationsFilter narrows ListMine. Dates are local and inclusive; nil
// fields do not filter.
type MyReservationsFilter struct {
	From  *timeslot.Date
	To    *timeslot.Date
	Class *facility.Class
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.StudentID, id int64) (*ReservationView, error)
	ListMine(ctx context.Context, actor user.StudentID, filter MyReservationsFilter) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByStudent(ctx context.Context, studentID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	zone      timeslot.Zone
}

func NewReservationQueries(readStore ReservationReadStore, zone timeslot.Zone) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, zone: zone}
}

// GetByID is visible to the owner and the participants only.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.StudentID, id int64) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound("reservation %d does not exist", id)
		}
		return nil, err
	}
	if !view.Involves(actor.Int64()) {
		return nil, errs.Forbidden("reservation %d belongs to someone else", id)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor user.StudentID, filter MyReservationsFilter) ([]*ReservationView, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errs.Validation("from must not be after to")
	}

	views, err := q.readStore.FindByStudent(ctx, actor.Int64())
	if err != nil {
		return nil, err
	}

	out := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		if filter.Class != nil && v.Class != *filter.Class {
			continue
		}
		day := q.zone.DateOf(v.StartTime)
		if filter.From != nil && day.Before(*filter.From) {
			continue
		}
		if filter.To != nil && filter.To.Before(day) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
