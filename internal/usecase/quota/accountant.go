// Package quota sums the minutes a requester has booked per local day and
// week and enforces the policy caps.
package quota

import (
	"context"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/shared"
)

type UsageSource interface {
	SumUsageMinutes(ctx context.Context, f shared.UsageFilter) (int, error)
}

type Accountant struct {
	policy reservation.Policy
}

func NewAccountant(policy reservation.Policy) *Accountant {
	return &Accountant{policy: policy}
}

// DailyUsageMinutes sums the requester's class bookings starting within the
// local calendar day of ref.
func (a *Accountant) DailyUsageMinutes(ctx context.Context, src UsageSource, id user.StudentID, class facility.Class, ref time.Time) (int, error) {
	return a.usage(ctx, src, id, class, a.policy.Zone.DayBounds(ref))
}

// WeeklyUsageMinutes is DailyUsageMinutes over the local Monday to Sunday week.
func (a *Accountant) WeeklyUsageMinutes(ctx context.Context, src UsageSource, id user.StudentID, class facility.Class, ref time.Time) (int, error) {
	return a.usage(ctx, src, id, class, a.policy.Zone.WeekBounds(ref))
}

// Meeting room time is charged to everyone bound to the booking; seats only
// to the owner.
func (a *Accountant) usage(ctx context.Context, src UsageSource, id user.StudentID, class facility.Class, rng timeslot.Window) (int, error) {
	return src.SumUsageMinutes(ctx, shared.UsageFilter{
		StudentID:          id,
		Class:              class,
		Range:              rng,
		Statuses:           reservation.UsageStatuses,
		CountParticipation: class == facility.ClassMeetingRoom,
	})
}

// CheckHeadroom fails with LimitExceeded when adding w would push any of ids
// past a daily or weekly cap for class.
func (a *Accountant) CheckHeadroom(ctx context.Context, src UsageSource, ids []user.StudentID, class facility.Class, w timeslot.Window) error {
	limits := a.policy.Limits(class)
	add := w.Minutes()

	for _, id := range ids {
		if limits.DailyLimitMinutes > 0 {
			used, err := a.DailyUsageMinutes(ctx, src, id, class, w.Start)
			if err != nil {
				return err
			}
			if used+add > limits.DailyLimitMinutes {
				return errs.LimitExceeded("%s would exceed the daily %s limit of %d minutes (already booked %d)",
					id, class, limits.DailyLimitMinutes, used)
			}
		}
		if limits.WeeklyLimitMinutes > 0 {
			used, err := a.WeeklyUsageMinutes(ctx, src, id, class, w.Start)
			if err != nil {
				return err
			}
			if used+add > limits.WeeklyLimitMinutes {
				return errs.LimitExceeded("%s would exceed the weekly %s limit of %d minutes (already booked %d)",
					id, class, limits.WeeklyLimitMinutes, used)
			}
		}
	}
	return nil
}
