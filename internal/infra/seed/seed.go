// Package seed provisions seats and meeting rooms from a YAML plan.
package seed

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type SeatRange struct {
	From        int32   `yaml:"from"`
	To          int32   `yaml:"to"`
	Unavailable []int32 `yaml:"unavailable"`
}

type MeetingRoom struct {
	ID          int32  `yaml:"id"`
	MinCapacity int32  `yaml:"min_capacity"`
	MaxCapacity *int32 `yaml:"max_capacity"`
	Unavailable bool   `yaml:"unavailable"`
}

type Plan struct {
	Seats        SeatRange     `yaml:"seats"`
	MeetingRooms []MeetingRoom `yaml:"meeting_rooms"`
}

func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read seed file %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, errs.Wrap(err, "decode seed yaml")
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *Plan) validate() error {
	if p.Seats.From <= 0 || p.Seats.To < p.Seats.From {
		return errs.Newf("seats: invalid range %d..%d", p.Seats.From, p.Seats.To)
	}
	seen := map[int32]bool{}
	for _, r := range p.MeetingRooms {
		if r.ID <= 0 {
			return errs.Newf("meeting_rooms: id must be positive, got %d", r.ID)
		}
		if seen[r.ID] {
			return errs.Newf("meeting_rooms: duplicate id %d", r.ID)
		}
		seen[r.ID] = true
		if r.MaxCapacity != nil && *r.MaxCapacity < r.minCapacity() {
			return errs.Newf("meeting_rooms: room %d max_capacity is below min_capacity", r.ID)
		}
	}
	return nil
}

func (r MeetingRoom) minCapacity() int32 {
	if r.MinCapacity <= 0 {
		return facility.DefaultMinCapacity
	}
	return r.MinCapacity
}

func (p *Plan) SeatsToUpsert() []facility.Seat {
	out := make([]facility.Seat, 0, p.Seats.To-p.Seats.From+1)
	for id := p.Seats.From; id <= p.Seats.To; id++ {
		out = append(out, facility.Seat{ID: id, Available: !slices.Contains(p.Seats.Unavailable, id)})
	}
	return out
}

func (p *Plan) RoomsToUpsert() []facility.MeetingRoom {
	out := make([]facility.MeetingRoom, len(p.MeetingRooms))
	for i, r := range p.MeetingRooms {
		out[i] = facility.MeetingRoom{
			ID:          r.ID,
			MinCapacity: r.minCapacity(),
			MaxCapacity: r.MaxCapacity,
			Available:   !r.Unavailable,
		}
	}
	return out
}

// Apply upserts every facility of the plan in one transaction.
func Apply(ctx context.Context, uow shared.UnitOfWork, plan *Plan) error {
	seats := plan.SeatsToUpsert()
	rooms := plan.RoomsToUpsert()

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range seats {
			if err := tx.Facilities().UpsertSeat(ctx, s); err != nil {
				return err
			}
		}
		for _, r := range rooms {
			if err := tx.Facilities().UpsertMeetingRoom(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("facilities seeded", "seats", len(seats), "meeting_rooms", len(rooms))
	return nil
}
