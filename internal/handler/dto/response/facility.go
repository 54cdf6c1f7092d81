package response

import (
	"campus-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	ID        int32 `json:"seat_id"`
	Available bool  `json:"is_available"`
}

type MeetingRoomResponse struct {
	ID          int32  `json:"room_id"`
	MinCapacity int32  `json:"min_capacity"`
	MaxCapacity *int32 `json:"max_capacity,omitempty"`
	Available   bool   `json:"is_available"`
}

func FromSeatViews(vs []*queries.SeatView) ([]SeatResponse, error) {
	out := []SeatResponse{}
	if err := copier.Copy(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromMeetingRoomViews(vs []*queries.MeetingRoomView) ([]MeetingRoomResponse, error) {
	out := []MeetingRoomResponse{}
	if err := copier.CopyWithOption(&out, vs, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
