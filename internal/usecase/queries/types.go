package queries

import (
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
)

// ReservationView is the read-side shape of one reservation. Times are UTC
// instants; the handler renders them on the local wall clock.
type ReservationView struct {
	ID           int64          `json:"reservation_id"`
	Class        facility.Class `json:"type"`
	FacilityID   int32          `json:"facility_id"`
	OwnerID      int64          `json:"owner_id"`
	Participants []int64        `json:"participants"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Involves reports whether id is the owner or a participant.
func (v *ReservationView) Involves(id int64) bool {
	if v.OwnerID == id {
		return true
	}
	for _, p := range v.Participants {
		if p == id {
			return true
		}
	}
	return false
}

func NewReservationView(res *reservation.Reservation) *ReservationView {
	ps := make([]int64, len(res.Participants()))
	for i, p := range res.Participants() {
		ps[i] = p.Int64()
	}
	return &ReservationView{
		ID:           res.ID(),
		Class:        res.Facility().Class,
		FacilityID:   res.Facility().ID,
		OwnerID:      res.Owner().Int64(),
		Participants: ps,
		StartTime:    res.Window().Start,
		EndTime:      res.Window().End,
		Status:       res.Status().String(),
		CreatedAt:    res.CreatedAt(),
	}
}

type SeatView struct {
	ID        int32 `json:"seat_id"`
	Available bool  `json:"is_available"`
}

type MeetingRoomView struct {
	ID          int32  `json:"room_id"`
	MinCapacity int32  `json:"min_capacity"`
	MaxCapacity *int32 `json:"max_capacity,omitempty"`
	Available   bool   `json:"is_available"`
}

// SlotView is one generated slot on the local wall clock.
type SlotView struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"is_available"`
}

type FacilitySlotsView struct {
	FacilityID int32      `json:"facility_id"`
	Slots      []SlotView `json:"slots"`
}

// MeetingRoomStatusView is the per-room slot grid of one local day.
type MeetingRoomStatusView struct {
	Date            string              `json:"date"`
	OpenAt          string              `json:"open_at"`
	CloseAt         string              `json:"close_at"`
	SlotUnitMinutes int                 `json:"slot_unit_minutes"`
	Rooms           []FacilitySlotsView `json:"rooms"`
}

// SeatSlotsView marks, per seat slot of one local day, whether any seat is free.
type SeatSlotsView struct {
	Date            string     `json:"date"`
	SlotUnitMinutes int        `json:"slot_unit_minutes"`
	Slots           []SlotView `json:"slots"`
}

// SeatAvailabilityView lists the seats free for a whole window.
type SeatAvailabilityView struct {
	Date             string  `json:"date"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	TotalSeats       int     `json:"total_seats"`
	AvailableSeatIDs []int32 `json:"available_seat_ids"`
}
