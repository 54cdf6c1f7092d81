package bootstrap

import (
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/errs"

	"go.uber.org/fx"
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		clock.NewRealClock,
		NewPolicy,
		NewZone,
		NewBlocklist,
	),
)

func NewPolicy(cfg config.Config) (reservation.Policy, error) {
	rc := cfg.Reservation
	open, err := timeslot.ParseTimeOfDay(rc.OpenAt)
	if err != nil {
		return reservation.Policy{}, errs.Wrap(err, "RESERVATION_OPEN_AT")
	}
	closeAt, err := timeslot.ParseTimeOfDay(rc.CloseAt)
	if err != nil {
		return reservation.Policy{}, errs.Wrap(err, "RESERVATION_CLOSE_AT")
	}
	hours, err := timeslot.NewOperatingHours(open, closeAt)
	if err != nil {
		return reservation.Policy{}, err
	}

	return reservation.Policy{
		Zone:  timeslot.NewZone(rc.TimeZone, rc.TimeZoneOffset),
		Hours: hours,
		Seat: reservation.Limits{
			SlotMinutes:       rc.SeatSlotMinutes,
			DailyLimitMinutes: rc.SeatDailyLimitMinutes,
		},
		MeetingRoom: reservation.Limits{
			SlotMinutes:        rc.RoomSlotMinutes,
			DailyLimitMinutes:  rc.RoomDailyLimitMinutes,
			WeeklyLimitMinutes: rc.RoomWeeklyLimitMinutes,
		},
		MinParticipants: rc.RoomMinParticipants,
	}, nil
}

func NewZone(policy reservation.Policy) timeslot.Zone {
	return policy.Zone
}

func NewBlocklist(cfg config.Config) (user.Blocklist, error) {
	ids, err := cfg.Reservation.BlockedIDs()
	if err != nil {
		return user.Blocklist{}, err
	}
	return user.NewBlocklist(ids...), nil
}
