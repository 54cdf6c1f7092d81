package user

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidStudentID = errors.New("student id must be a 9-digit number")
	ErrBlockedStudentID = errors.New("student id is not allowed")
)

const (
	minStudentID = 100000000
	maxStudentID = 999999999
)

// StudentID is the numeric requester identifier that every reservation binds to.
type StudentID int64

func NewStudentID(v int64) (StudentID, error) {
	if v < minStudentID || v > maxStudentID {
		return 0, ErrInvalidStudentID
	}
	return StudentID(v), nil
}

func ParseStudentID(s string) (StudentID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 9 {
		return 0, ErrInvalidStudentID
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidStudentID
	}
	return NewStudentID(v)
}

func (id StudentID) Int64() int64 { return int64(id) }

func (id StudentID) String() string { return strconv.FormatInt(int64(id), 10) }

// Student is a requester record; created on first interaction and never deleted.
type Student struct {
	ID           StudentID
	LastActiveAt time.Time
	CreatedAt    time.Time
}

// Blocklist holds identifiers that may not log in or be bound to a reservation.
type Blocklist struct {
	ids map[StudentID]struct{}
}

func NewBlocklist(ids ...int64) Blocklist {
	m := make(map[StudentID]struct{}, len(ids))
	for _, id := range ids {
		m[StudentID(id)] = struct{}{}
	}
	return Blocklist{ids: m}
}

func (b Blocklist) Contains(id StudentID) bool {
	_, ok := b.ids[id]
	return ok
}

// Check returns ErrBlockedStudentID for a listed id.
func (b Blocklist) Check(id StudentID) error {
	if b.Contains(id) {
		return ErrBlockedStudentID
	}
	return nil
}
