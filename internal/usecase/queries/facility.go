package queries

import "context"

type FacilityQueries interface {
	ListSeats(ctx context.Context) ([]*SeatView, error)
	ListMeetingRooms(ctx context.Context) ([]*MeetingRoomView, error)
}

type FacilityReadStore interface {
	FindSeats(ctx context.Context) ([]*SeatView, error)
	FindMeetingRooms(ctx context.Context) ([]*MeetingRoomView, error)
}

type facilityQueriesImpl struct {
	readStore FacilityReadStore
}

func NewFacilityQueries(readStore FacilityReadStore) FacilityQueries {
	return &facilityQueriesImpl{readStore: readStore}
}

func (q *facilityQueriesImpl) ListSeats(ctx context.Context) ([]*SeatView, error) {
	return q.readStore.FindSeats(ctx)
}

func (q *facilityQueriesImpl) ListMeetingRooms(ctx context.Context) ([]*MeetingRoomView, error) {
	return q.readStore.FindMeetingRooms(ctx)
}
