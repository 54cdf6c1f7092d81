package request

import (
	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/commands"
	"campus-reservation/internal/usecase/queries"
)

// CreateSeatReservationRequest books a seat. Omitting seat_id asks for a
// random free seat.
type CreateSeatReservationRequest struct {
	SeatID    *int32 `json:"seat_id" binding:"omitempty,min=1"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

type ParticipantRequest struct {
	StudentID int64 `json:"student_id" binding:"required,student_id"`
}

type CreateRoomReservationRequest struct {
	RoomID       int32                `json:"room_id" binding:"required,min=1"`
	Date         string               `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string               `json:"start_time" binding:"required,hhmm"`
	EndTime      string               `json:"end_time" binding:"required,hhmm"`
	Participants []ParticipantRequest `json:"participants" binding:"required,dive"`
}

func (r CreateSeatReservationRequest) ToInput(requester user.StudentID) (commands.CreateSeatReservationInput, error) {
	date, start, end, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateSeatReservationInput{}, err
	}
	return commands.CreateSeatReservationInput{
		Requester: requester,
		SeatID:    r.SeatID,
		Date:      date,
		Start:     start,
		End:       end,
	}, nil
}

func (r CreateRoomReservationRequest) ToInput(requester user.StudentID) (commands.CreateRoomReservationInput, error) {
	date, start, end, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateRoomReservationInput{}, err
	}
	participants := make([]user.StudentID, 0, len(r.Participants))
	for _, p := range r.Participants {
		id, err := user.NewStudentID(p.StudentID)
		if err != nil {
			return commands.CreateRoomReservationInput{}, errs.Validation("participant %d: %s", p.StudentID, err.Error())
		}
		participants = append(participants, id)
	}
	return commands.CreateRoomReservationInput{
		Requester:    requester,
		RoomID:       r.RoomID,
		Date:         date,
		Start:        start,
		End:          end,
		Participants: participants,
	}, nil
}

// MyReservationsQuery filters GET /reservations/me.
type MyReservationsQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Type string `form:"type" binding:"omitempty,oneof=seat meeting_room"`
}

func (q MyReservationsQuery) ToFilter() (queries.MyReservationsFilter, error) {
	var f queries.MyReservationsFilter
	if q.From != "" {
		d, err := timeslot.ParseDate(q.From)
		if err != nil {
			return f, errs.Validation("%s", err.Error())
		}
		f.From = &d
	}
	if q.To != "" {
		d, err := timeslot.ParseDate(q.To)
		if err != nil {
			return f, errs.Validation("%s", err.Error())
		}
		f.To = &d
	}
	if q.Type != "" {
		c, err := facility.ParseClass(q.Type)
		if err != nil {
			return f, errs.Validation("%s", err.Error())
		}
		f.Class = &c
	}
	return f, nil
}

func parseSlot(date, start, end string) (timeslot.Date, timeslot.TimeOfDay, timeslot.TimeOfDay, error) {
	d, err := timeslot.ParseDate(date)
	if err != nil {
		return timeslot.Date{}, 0, 0, errs.Validation("%s", err.Error())
	}
	s, err := timeslot.ParseTimeOfDay(start)
	if err != nil {
		return timeslot.Date{}, 0, 0, errs.Validation("%s", err.Error())
	}
	e, err := timeslot.ParseTimeOfDay(end)
	if err != nil {
		return timeslot.Date{}, 0, 0, errs.Validation("%s", err.Error())
	}
	return d, s, e, nil
}
