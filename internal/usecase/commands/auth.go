package commands

import (
	"context"
	"log/slog"
	"time"

	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/pkg/jwt"
	"campus-reservation/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	StudentID   user.StudentID
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, studentID string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	blocklist  user.Blocklist
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, blocklist user.Blocklist, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		blocklist:  blocklist,
		clock:      clock,
	}
}

// Login identifies a requester by student id alone, recording the visit.
func (a *authCommandsImpl) Login(ctx context.Context, studentID string) (*LoginResult, error) {
	id, err := user.ParseStudentID(studentID)
	if err != nil {
		return nil, errs.Validation("student id must be a 9-digit number")
	}
	if a.blocklist.Contains(id) {
		slog.Warn("blocked student id attempted login", "student_id", id.String())
		return nil, errs.Validation("invalid student id")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Upsert(ctx, id, a.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(id.Int64())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		StudentID:   id,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
