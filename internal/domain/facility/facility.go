package facility

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidClass = errors.New("invalid facility class")
	ErrInvalidID    = errors.New("facility id must be positive")
)

// Class distinguishes single-occupant seats from multi-person meeting rooms.
type Class string

const (
	ClassSeat        Class = "seat"
	ClassMeetingRoom Class = "meeting_room"
)

func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassSeat, ClassMeetingRoom:
		return Class(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidClass, s)
	}
}

func (c Class) String() string { return string(c) }

// Ref identifies one facility of a class.
type Ref struct {
	Class Class
	ID    int32
}

func NewRef(class Class, id int32) (Ref, error) {
	if _, err := ParseClass(string(class)); err != nil {
		return Ref{}, err
	}
	if id <= 0 {
		return Ref{}, ErrInvalidID
	}
	return Ref{Class: class, ID: id}, nil
}

func SeatRef(id int32) Ref        { return Ref{Class: ClassSeat, ID: id} }
func MeetingRoomRef(id int32) Ref { return Ref{Class: ClassMeetingRoom, ID: id} }

func (r Ref) String() string {
	if r.Class == ClassSeat {
		return fmt.Sprintf("seat %d", r.ID)
	}
	return fmt.Sprintf("meeting room %d", r.ID)
}

type Seat struct {
	ID        int32
	Available bool
}

const DefaultMinCapacity = 3

type MeetingRoom struct {
	ID          int32
	MinCapacity int32
	MaxCapacity *int32
	Available   bool
}

// Facility is the class-independent view the allocator validates against.
type Facility struct {
	Ref         Ref
	Available   bool
	MinCapacity int32
	MaxCapacity *int32
}

func FromSeat(s Seat) Facility {
	return Facility{Ref: SeatRef(s.ID), Available: s.Available, MinCapacity: 1, MaxCapacity: ptrInt32(1)}
}

func FromMeetingRoom(r MeetingRoom) Facility {
	return Facility{Ref: MeetingRoomRef(r.ID), Available: r.Available, MinCapacity: r.MinCapacity, MaxCapacity: r.MaxCapacity}
}

// Admits reports whether headcount people fit within the maximum capacity, when one is set.
func (f Facility) Admits(headcount int) bool {
	return f.MaxCapacity == nil || headcount <= int(*f.MaxCapacity)
}

func ptrInt32(v int32) *int32 { return &v }
