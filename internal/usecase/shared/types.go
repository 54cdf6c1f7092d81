package shared

import (
	"context"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/reservation"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// OverlapScope selects which facility classes count toward a requester overlap.
type OverlapScope struct {
	Seats    bool
	Rooms    bool
	Statuses []reservation.Status
}

// UsageFilter selects reservations whose start lies in Range.
type UsageFilter struct {
	StudentID          user.StudentID
	Class              facility.Class
	Range              timeslot.Window
	Statuses           []reservation.Status
	CountParticipation bool
}

// Occupancy is one active reservation as seen by the availability views.
type Occupancy struct {
	Facility facility.Ref    `json:"facility"`
	Window   timeslot.Window `json:"window"`
}

type AdvanceResult struct {
	Started   int64
	Completed int64
}

type EventID = uuid.UUID

const (
	EventReservationCreated  = "reservation.created"
	EventReservationCanceled = "reservation.canceled"
)

type Event struct {
	ID            EventID
	Kind          string
	ReservationID int64
	Payload       []byte
	CreatedAt     time.Time
}

// EventPublisher delivers outbox events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// OccupancyCache holds per-day occupancy lists for the status views.
//
// Get reports, on a miss, the invalidation generation seen at read time.
// Set stores occ only while that generation is still current, so a list
// loaded before a write committed never outlives the write's Invalidate.
// A negative generation means the cache could not be read and Set is a no-op.
type OccupancyCache interface {
	Get(ctx context.Context, class facility.Class, date timeslot.Date) (occ []Occupancy, gen int64, ok bool)
	Set(ctx context.Context, class facility.Class, date timeslot.Date, gen int64, occ []Occupancy)
	Invalidate(ctx context.Context, class facility.Class, date timeslot.Date)
}

type NoopOccupancyCache struct{}

func (NoopOccupancyCache) Get(context.Context, facility.Class, timeslot.Date) ([]Occupancy, int64, bool) {
	return nil, -1, false
}
func (NoopOccupancyCache) Set(context.Context, facility.Class, timeslot.Date, int64, []Occupancy) {}
func (NoopOccupancyCache) Invalidate(context.Context, facility.Class, timeslot.Date)             {}
