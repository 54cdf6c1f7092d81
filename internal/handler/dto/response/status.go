package response

import "campus-reservation/internal/usecase/queries"

type OperationHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"is_available"`
}

type RoomSlotsResponse struct {
	RoomID int32          `json:"room_id"`
	Slots  []SlotResponse `json:"slots"`
}

type MeetingRoomStatusResponse struct {
	Date            string              `json:"date"`
	OperationHours  OperationHours      `json:"operation_hours"`
	SlotUnitMinutes int                 `json:"slot_unit_minutes"`
	Rooms           []RoomSlotsResponse `json:"rooms"`
}

type SeatSlotResponse struct {
	Start            string `json:"start"`
	End              string `json:"end"`
	HasAvailableSeat bool   `json:"has_available_seat"`
}

type SeatSlotsResponse struct {
	Date            string             `json:"date"`
	SlotUnitMinutes int                `json:"slot_unit_minutes"`
	Slots           []SeatSlotResponse `json:"slots"`
}

type SeatAvailabilityResponse struct {
	Date             string         `json:"date"`
	TimeRange        OperationHours `json:"time_range"`
	TotalSeats       int            `json:"total_seats"`
	AvailableSeatIDs []int32        `json:"available_seat_ids"`
	AvailableCount   int            `json:"available_count"`
}

func FromMeetingRoomStatus(v *queries.MeetingRoomStatusView) *MeetingRoomStatusResponse {
	rooms := make([]RoomSlotsResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		slots := make([]SlotResponse, len(r.Slots))
		for j, s := range r.Slots {
			slots[j] = SlotResponse(s)
		}
		rooms[i] = RoomSlotsResponse{RoomID: r.FacilityID, Slots: slots}
	}
	return &MeetingRoomStatusResponse{
		Date:            v.Date,
		OperationHours:  OperationHours{Start: v.OpenAt, End: v.CloseAt},
		SlotUnitMinutes: v.SlotUnitMinutes,
		Rooms:           rooms,
	}
}

func FromSeatSlots(v *queries.SeatSlotsView) *SeatSlotsResponse {
	slots := make([]SeatSlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SeatSlotResponse{Start: s.Start, End: s.End, HasAvailableSeat: s.Available}
	}
	return &SeatSlotsResponse{
		Date:            v.Date,
		SlotUnitMinutes: v.SlotUnitMinutes,
		Slots:           slots,
	}
}

func FromSeatAvailability(v *queries.SeatAvailabilityView) *SeatAvailabilityResponse {
	ids := v.AvailableSeatIDs
	if ids == nil {
		ids = []int32{}
	}
	return &SeatAvailabilityResponse{
		Date:             v.Date,
		TimeRange:        OperationHours{Start: v.Start, End: v.End},
		TotalSeats:       v.TotalSeats,
		AvailableSeatIDs: ids,
		AvailableCount:   len(ids),
	}
}
