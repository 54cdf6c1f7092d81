package request

import (
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/pkg/errs"
)

type StatusDateQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (q StatusDateQuery) ParseDate() (timeslot.Date, error) {
	d, err := timeslot.ParseDate(q.Date)
	if err != nil {
		return timeslot.Date{}, errs.Validation("%s", err.Error())
	}
	return d, nil
}

type SeatAvailabilityQuery struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `form:"start_time" binding:"required,hhmm"`
	EndTime   string `form:"end_time" binding:"required,hhmm"`
}

func (q SeatAvailabilityQuery) Parse() (timeslot.Date, timeslot.TimeOfDay, timeslot.TimeOfDay, error) {
	return parseSlot(q.Date, q.StartTime, q.EndTime)
}
