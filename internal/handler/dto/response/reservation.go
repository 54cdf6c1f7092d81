package response

import (
	"log/slog"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// ReservationResponse renders a reservation on the facility's local clock.
type ReservationResponse struct {
	ReservationID int64     `json:"reservation_id"`
	Type          string    `json:"type"`
	SeatID        *int32    `json:"seat_id,omitempty"`
	RoomID        *int32    `json:"room_id,omitempty"`
	OwnerID       int64     `json:"owner_id"`
	Participants  []int64   `json:"participants"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time" copier:"-"`
	EndTime       string    `json:"end_time" copier:"-"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type MyReservationsResponse struct {
	Items []*ReservationResponse `json:"items"`
}

func FromReservationView(v *queries.ReservationView, zone timeslot.Zone) *ReservationResponse {
	res := &ReservationResponse{}
	// OwnerID, Participants, Status and CreatedAt share names with the view;
	// the local clock fields are filled below
	if err := copier.Copy(res, v); err != nil {
		slog.Warn("reservation response copy failed", "reservation_id", v.ID, "error", err.Error())
	}

	res.ReservationID = v.ID
	res.Type = v.Class.String()
	id := v.FacilityID
	if v.Class == facility.ClassMeetingRoom {
		res.RoomID = &id
	} else {
		res.SeatID = &id
	}
	if res.Participants == nil {
		res.Participants = []int64{}
	}
	res.Date = zone.DateOf(v.StartTime).String()
	start, end := zone.ClockRange(v.StartTime, v.EndTime)
	res.StartTime = start.String()
	res.EndTime = end.String()
	res.CreatedAt = v.CreatedAt.In(zone.Location())
	return res
}

func FromReservationViews(vs []*queries.ReservationView, zone timeslot.Zone) *MyReservationsResponse {
	items := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		items[i] = FromReservationView(v, zone)
	}
	return &MyReservationsResponse{Items: items}
}
